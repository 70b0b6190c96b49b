package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PricingRuleType string

const (
	RuleDistance PricingRuleType = "distance"
	RuleWeight   PricingRuleType = "weight"
	RuleCategory PricingRuleType = "category"
	RuleRoute    PricingRuleType = "route"
	RuleSurge    PricingRuleType = "surge"
)

func (t PricingRuleType) String() string {
	return string(t)
}

func (t PricingRuleType) IsValid() bool {
	switch t {
	case RuleDistance, RuleWeight, RuleCategory, RuleRoute, RuleSurge:
		return true
	}
	return false
}

type PricingRule struct {
	ID         int64
	Name       string
	RuleType   PricingRuleType
	CategoryID *int64
	RouteID    *int64
	MinValue   *decimal.Decimal
	MaxValue   *decimal.Decimal
	Multiplier decimal.Decimal
	Priority   int
	Validity   ValidityWindow
	Status     LifecycleStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActiveAt reports whether the rule is published and its window contains t.
func (r PricingRule) IsActiveAt(t time.Time) bool {
	return r.Status == StatusPublished && r.Validity.Contains(t)
}

// MatchesValue checks MinValue <= v <= MaxValue, unset bounds always match.
func (r PricingRule) MatchesValue(v decimal.Decimal) bool {
	if r.MinValue != nil && v.LessThan(*r.MinValue) {
		return false
	}
	if r.MaxValue != nil && v.GreaterThan(*r.MaxValue) {
		return false
	}
	return true
}

type PricingRuleModify struct {
	Name       string
	RuleType   PricingRuleType
	CategoryID *int64
	RouteID    *int64
	MinValue   *decimal.Decimal
	MaxValue   *decimal.Decimal
	Multiplier decimal.Decimal
	Priority   int
	Validity   ValidityWindow
}

// RuleContext describes the shipment attributes rules are matched against.
type RuleContext struct {
	RuleType   *PricingRuleType
	CategoryID *int64
	RouteID    *int64
	Value      *decimal.Decimal
}

type PricingRuleFilter struct {
	RuleType *PricingRuleType
	Status   *LifecycleStatus
}

type RoutePricing struct {
	ID              int64
	RouteID         int64
	CategoryID      *int64
	BasePrice       decimal.Decimal
	SurgeMultiplier decimal.Decimal
	Validity        ValidityWindow
	Status          LifecycleStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p RoutePricing) IsActiveAt(t time.Time) bool {
	return p.Status == StatusPublished && p.Validity.Contains(t)
}

// SameBucket reports whether both entries price the same (route, category) pair,
// a nil category being a bucket of its own.
func (p RoutePricing) SameBucket(other RoutePricing) bool {
	if p.RouteID != other.RouteID {
		return false
	}
	if p.CategoryID == nil || other.CategoryID == nil {
		return p.CategoryID == nil && other.CategoryID == nil
	}
	return *p.CategoryID == *other.CategoryID
}

type RoutePricingModify struct {
	RouteID         int64
	CategoryID      *int64
	BasePrice       decimal.Decimal
	SurgeMultiplier decimal.Decimal
	Validity        ValidityWindow
}

type RoutePricingFilter struct {
	RouteID *int64
	Status  *LifecycleStatus
}

type RouteQuote struct {
	RoutePricingID  int64
	RouteID         int64
	CategoryID      *int64
	BasePrice       decimal.Decimal
	SurgeMultiplier decimal.Decimal
	QuotedPrice     decimal.Decimal
}
