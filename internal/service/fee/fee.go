package fee

import (
	"context"
	"fmt"

	"builty-service/internal/entities"
	"builty-service/pkg/logger"
	"github.com/shopspring/decimal"
)

var (
	DefaultPercent = decimal.NewFromInt(5)
	DefaultMinFee  = decimal.NewFromInt(500)
	DefaultMaxFee  = decimal.NewFromInt(50000)

	hundred = decimal.NewFromInt(100)
)

// Calculator computes the hidden platform fee from published configuration.
type Calculator struct {
	config ConfigReader
	log    serviceLogger
}

func New(config ConfigReader, log serviceLogger) *Calculator {
	return &Calculator{
		config: config,
		log:    log,
	}
}

// ComputePlatformFee = clamp(round(freight * percent / 100, 2), min, max).
// Incomplete configuration falls back to defaults, only storage errors are returned.
func (c *Calculator) ComputePlatformFee(ctx context.Context, freightCharges decimal.Decimal) (decimal.Decimal, error) {
	percent, err := c.numberOrDefault(ctx, entities.ConfigKeyPlatformFeePercent, DefaultPercent)
	if err != nil {
		return decimal.Zero, err
	}
	minFee, err := c.numberOrDefault(ctx, entities.ConfigKeyMinPlatformFee, DefaultMinFee)
	if err != nil {
		return decimal.Zero, err
	}
	maxFee, err := c.numberOrDefault(ctx, entities.ConfigKeyMaxPlatformFee, DefaultMaxFee)
	if err != nil {
		return decimal.Zero, err
	}

	// границы сужаются до копеек, чтобы округлённая комиссия не вышла за них
	minFee, maxFee = minFee.RoundCeil(2), maxFee.RoundFloor(2)
	if minFee.GreaterThan(maxFee) {
		c.log.Warn("platform fee bounds inverted, using defaults",
			logger.NewField("min_platform_fee", minFee.String()),
			logger.NewField("max_platform_fee", maxFee.String()),
		)
		minFee, maxFee = DefaultMinFee, DefaultMaxFee
	}

	return Clamp(freightCharges.Mul(percent).Div(hundred).Round(2), minFee, maxFee), nil
}

func (c *Calculator) numberOrDefault(ctx context.Context, key string, def decimal.Decimal) (decimal.Decimal, error) {
	value, err := c.config.GetValue(ctx, key)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read %s: %w", key, err)
	}

	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() {
		return def, nil
	}
	return d, nil
}

func Clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

// ComputeVisibleTotal is what the shipper pays, the platform fee is never part of it.
func ComputeVisibleTotal(freight, loading, unloading, other decimal.Decimal) decimal.Decimal {
	return freight.Add(loading).Add(unloading).Add(other)
}

func ComputeBalanceDue(total, advance decimal.Decimal) decimal.Decimal {
	return total.Sub(advance)
}
