package request

import (
	"errors"
	"net/http"
	"strconv"

	"builty-service/internal/entities"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidID    = errors.New("invalid id")
	ErrInvalidQuery = errors.New("invalid query parameter")
)

// PathID parses a positive int64 path variable.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ListFilter reads status, search, page and limit. Absent numbers stay zero.
func ListFilter(r *http.Request) (entities.ListFilter, error) {
	query := r.URL.Query()

	filter := entities.ListFilter{
		Search: query.Get("search"),
	}

	if status := query.Get("status"); status != "" {
		s := entities.BuiltyStatus(status)
		filter.Status = &s
	}

	page, err := optionalInt(query.Get("page"))
	if err != nil {
		return entities.ListFilter{}, err
	}
	filter.Page = page

	limit, err := optionalInt(query.Get("limit"))
	if err != nil {
		return entities.ListFilter{}, err
	}
	filter.Limit = limit

	return filter, nil
}

// OptionalInt64 returns nil for an absent parameter.
func OptionalInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, ErrInvalidQuery
	}
	return &v, nil
}

func OptionalDecimal(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, ErrInvalidQuery
	}
	return &v, nil
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidQuery
	}
	return v, nil
}
