package pricing

import (
	"sort"
	"time"

	"builty-service/internal/entities"
)

// Resolve returns the rules applicable to ruleCtx at now, ordered by priority
// descending and id ascending. It never fails, an empty result means no match.
func Resolve(rules []entities.PricingRule, ruleCtx entities.RuleContext, now time.Time) []entities.PricingRule {
	applicable := make([]entities.PricingRule, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsActiveAt(now) {
			continue
		}
		if ruleCtx.RuleType != nil && rule.RuleType != *ruleCtx.RuleType {
			continue
		}
		if ruleCtx.CategoryID != nil && !equalID(rule.CategoryID, *ruleCtx.CategoryID) {
			continue
		}
		if ruleCtx.RouteID != nil && !equalID(rule.RouteID, *ruleCtx.RouteID) {
			continue
		}
		if ruleCtx.Value != nil && !rule.MatchesValue(*ruleCtx.Value) {
			continue
		}
		applicable = append(applicable, rule)
	}

	sort.SliceStable(applicable, func(i, j int) bool {
		if applicable[i].Priority != applicable[j].Priority {
			return applicable[i].Priority > applicable[j].Priority
		}
		return applicable[i].ID < applicable[j].ID
	})
	return applicable
}

func equalID(ruleID *int64, want int64) bool {
	return ruleID != nil && *ruleID == want
}
