package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PricingRule struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	RuleType   string           `json:"rule_type"`
	CategoryID *int64           `json:"category_id,omitempty"`
	RouteID    *int64           `json:"route_id,omitempty"`
	MinValue   *decimal.Decimal `json:"min_value,omitempty"`
	MaxValue   *decimal.Decimal `json:"max_value,omitempty"`
	Multiplier decimal.Decimal  `json:"multiplier"`
	Priority   int              `json:"priority"`
	ValidFrom  *time.Time       `json:"valid_from,omitempty"`
	ValidUntil *time.Time       `json:"valid_until,omitempty"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type PricingRuleModify struct {
	Name       string           `json:"name"`
	RuleType   string           `json:"rule_type"`
	CategoryID *int64           `json:"category_id,omitempty"`
	RouteID    *int64           `json:"route_id,omitempty"`
	MinValue   *decimal.Decimal `json:"min_value,omitempty"`
	MaxValue   *decimal.Decimal `json:"max_value,omitempty"`
	Multiplier decimal.Decimal  `json:"multiplier"`
	Priority   int              `json:"priority"`
	ValidFrom  *time.Time       `json:"valid_from,omitempty"`
	ValidUntil *time.Time       `json:"valid_until,omitempty"`
}

type RoutePricing struct {
	ID              int64           `json:"id"`
	RouteID         int64           `json:"route_id"`
	CategoryID      *int64          `json:"category_id,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	SurgeMultiplier decimal.Decimal `json:"surge_multiplier"`
	ValidFrom       *time.Time      `json:"valid_from,omitempty"`
	ValidUntil      *time.Time      `json:"valid_until,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type RoutePricingModify struct {
	RouteID         int64           `json:"route_id"`
	CategoryID      *int64          `json:"category_id,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	SurgeMultiplier decimal.Decimal `json:"surge_multiplier"`
	ValidFrom       *time.Time      `json:"valid_from,omitempty"`
	ValidUntil      *time.Time      `json:"valid_until,omitempty"`
}

type RouteQuote struct {
	RoutePricingID  int64           `json:"route_pricing_id"`
	RouteID         int64           `json:"route_id"`
	CategoryID      *int64          `json:"category_id,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	SurgeMultiplier decimal.Decimal `json:"surge_multiplier"`
	QuotedPrice     decimal.Decimal `json:"quoted_price"`
}
