package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

type PricingRuleDB struct {
	ID         int64
	Name       string
	RuleType   string
	CategoryID *int64
	RouteID    *int64
	MinValue   decimal.NullDecimal
	MaxValue   decimal.NullDecimal
	Multiplier decimal.Decimal
	Priority   int
	ValidFrom  *time.Time
	ValidUntil *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *PricingRuleDB) scanTargets() []any {
	return []any{
		&r.ID,
		&r.Name,
		&r.RuleType,
		&r.CategoryID,
		&r.RouteID,
		&r.MinValue,
		&r.MaxValue,
		&r.Multiplier,
		&r.Priority,
		&r.ValidFrom,
		&r.ValidUntil,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}

type RoutePricingDB struct {
	ID              int64
	RouteID         int64
	CategoryID      *int64
	BasePrice       decimal.Decimal
	SurgeMultiplier decimal.Decimal
	ValidFrom       *time.Time
	ValidUntil      *time.Time
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p *RoutePricingDB) scanTargets() []any {
	return []any{
		&p.ID,
		&p.RouteID,
		&p.CategoryID,
		&p.BasePrice,
		&p.SurgeMultiplier,
		&p.ValidFrom,
		&p.ValidUntil,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
