package configuration

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"builty-service/internal/entities"
	"github.com/shopspring/decimal"
)

var configKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_.]{0,99}$`)

func isValidKey(key string) bool {
	return configKeyPattern.MatchString(key)
}

// DecodeValue converts the stored string form into the Go value of the declared type:
// number → decimal.Decimal, boolean → bool, string → string, json → any.
func DecodeValue(dataType entities.ConfigDataType, raw string) (any, error) {
	switch dataType {
	case entities.ConfigNumber:
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("decode number: %w", err)
		}
		return d, nil
	case entities.ConfigBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("decode boolean: %w", err)
		}
		return b, nil
	case entities.ConfigString:
		return raw, nil
	case entities.ConfigJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidConfigDataType, dataType)
	}
}
