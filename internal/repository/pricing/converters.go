package pricing

import (
	"builty-service/internal/entities"
	"github.com/shopspring/decimal"
)

func RuleToDomain(r *PricingRuleDB) *entities.PricingRule {
	if r == nil {
		return nil
	}

	return &entities.PricingRule{
		ID:         r.ID,
		Name:       r.Name,
		RuleType:   entities.PricingRuleType(r.RuleType),
		CategoryID: r.CategoryID,
		RouteID:    r.RouteID,
		MinValue:   fromNullDecimal(r.MinValue),
		MaxValue:   fromNullDecimal(r.MaxValue),
		Multiplier: r.Multiplier,
		Priority:   r.Priority,
		Validity: entities.ValidityWindow{
			From:  r.ValidFrom,
			Until: r.ValidUntil,
		},
		Status:    entities.LifecycleStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func RuleToDomainList(rulesDB []PricingRuleDB) []entities.PricingRule {
	if len(rulesDB) == 0 {
		return []entities.PricingRule{}
	}

	result := make([]entities.PricingRule, len(rulesDB))
	for i := range rulesDB {
		result[i] = *RuleToDomain(&rulesDB[i])
	}
	return result
}

func RoutePricingToDomain(p *RoutePricingDB) *entities.RoutePricing {
	if p == nil {
		return nil
	}

	return &entities.RoutePricing{
		ID:              p.ID,
		RouteID:         p.RouteID,
		CategoryID:      p.CategoryID,
		BasePrice:       p.BasePrice,
		SurgeMultiplier: p.SurgeMultiplier,
		Validity: entities.ValidityWindow{
			From:  p.ValidFrom,
			Until: p.ValidUntil,
		},
		Status:    entities.LifecycleStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func RoutePricingToDomainList(pricingDB []RoutePricingDB) []entities.RoutePricing {
	if len(pricingDB) == 0 {
		return []entities.RoutePricing{}
	}

	result := make([]entities.RoutePricing, len(pricingDB))
	for i := range pricingDB {
		result[i] = *RoutePricingToDomain(&pricingDB[i])
	}
	return result
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
