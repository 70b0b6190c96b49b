package pricing

import (
	"strings"

	"builty-service/internal/entities"
)

func validateRule(rule entities.PricingRuleModify) error {
	name := strings.TrimSpace(rule.Name)
	if name == "" || len(name) > 120 {
		return ErrInvalidRuleName
	}
	if !rule.RuleType.IsValid() {
		return ErrInvalidRuleType
	}
	if rule.Multiplier.IsNegative() {
		return ErrInvalidMultiplier
	}
	if rule.MinValue != nil && rule.MaxValue != nil && rule.MinValue.GreaterThan(*rule.MaxValue) {
		return ErrInvalidValueRange
	}
	if !rule.Validity.IsValid() {
		return ErrInvalidValidityWindow
	}
	return nil
}

func validateRoutePricing(pricing entities.RoutePricingModify) error {
	if pricing.RouteID <= 0 {
		return ErrInvalidRouteID
	}
	if pricing.BasePrice.IsNegative() {
		return ErrInvalidBasePrice
	}
	if pricing.SurgeMultiplier.IsNegative() {
		return ErrInvalidSurgeMultiplier
	}
	if !pricing.Validity.IsValid() {
		return ErrInvalidValidityWindow
	}
	return nil
}
