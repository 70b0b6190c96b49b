package pricing

import "errors"

var (
	ErrInvalidRuleName        = errors.New("invalid rule name")
	ErrInvalidRuleType        = errors.New("invalid rule type")
	ErrInvalidMultiplier      = errors.New("multiplier must not be negative")
	ErrInvalidValueRange      = errors.New("min value exceeds max value")
	ErrInvalidValidityWindow  = errors.New("valid from is after valid until")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidRouteID         = errors.New("invalid route id")
	ErrInvalidBasePrice       = errors.New("base price must not be negative")
	ErrInvalidSurgeMultiplier = errors.New("surge multiplier must not be negative")

	ErrPricingRuleNotFound    = errors.New("pricing rule not found")
	ErrRoutePricingNotFound   = errors.New("route pricing not found")
	ErrRoutePricingOverlap    = errors.New("route pricing overlaps a published entry")
	ErrConcurrentModification = errors.New("concurrent modification")
)
