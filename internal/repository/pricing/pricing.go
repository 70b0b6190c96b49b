package pricing

import (
	"context"
	"errors"
	"fmt"

	"builty-service/internal/entities"
	"builty-service/internal/repository"
	"builty-service/internal/service/pricing"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	ruleColumns = `id, name, rule_type, category_id, route_id, min_value, max_value,
	multiplier, priority, valid_from, valid_until, status, created_at, updated_at`

	routePricingColumns = `id, route_id, category_id, base_price, surge_multiplier,
	valid_from, valid_until, status, created_at, updated_at`
)

// Repository stores pricing rules and route pricing, both tables share the
// draft/published/archived lifecycle.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateRule(ctx context.Context, rule entities.PricingRuleModify) (*entities.PricingRule, error) {
	query := `INSERT INTO pricing_rules
			(name, rule_type, category_id, route_id, min_value, max_value, multiplier, priority, valid_from, valid_until, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'draft')
		RETURNING ` + ruleColumns

	var ruleDB PricingRuleDB
	err := r.querier.QueryRow(
		ctx,
		query,
		rule.Name,
		rule.RuleType.String(),
		rule.CategoryID,
		rule.RouteID,
		toNullDecimal(rule.MinValue),
		toNullDecimal(rule.MaxValue),
		rule.Multiplier,
		rule.Priority,
		rule.Validity.From,
		rule.Validity.Until,
	).Scan(ruleDB.scanTargets()...)
	if err != nil {
		return nil, fmt.Errorf("unexpected pricing repository createrule error: %w", err)
	}

	return RuleToDomain(&ruleDB), nil
}

func (r *Repository) UpdateRule(ctx context.Context, id int64, rule entities.PricingRuleModify) (*entities.PricingRule, error) {
	query, args, err := qb.
		Update("pricing_rules").
		Set("name", rule.Name).
		Set("rule_type", rule.RuleType.String()).
		Set("category_id", rule.CategoryID).
		Set("route_id", rule.RouteID).
		Set("min_value", toNullDecimal(rule.MinValue)).
		Set("max_value", toNullDecimal(rule.MaxValue)).
		Set("multiplier", rule.Multiplier).
		Set("priority", rule.Priority).
		Set("valid_from", rule.Validity.From).
		Set("valid_until", rule.Validity.Until).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + ruleColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pricing repository updaterule error: %w", err)
	}

	var ruleDB PricingRuleDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(ruleDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrPricingRuleNotFound
		}
		return nil, fmt.Errorf("unexpected pricing repository updaterule error: %w", err)
	}

	return RuleToDomain(&ruleDB), nil
}

func (r *Repository) SetRuleStatus(ctx context.Context, id int64, status entities.LifecycleStatus) (*entities.PricingRule, error) {
	query := `UPDATE pricing_rules
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + ruleColumns

	var ruleDB PricingRuleDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).Scan(ruleDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrPricingRuleNotFound
		}
		return nil, fmt.Errorf("unexpected pricing repository setrulestatus error: %w", err)
	}

	return RuleToDomain(&ruleDB), nil
}

func (r *Repository) GetRule(ctx context.Context, id int64) (*entities.PricingRule, error) {
	query := `SELECT ` + ruleColumns + `
		FROM pricing_rules
		WHERE id = $1`

	var ruleDB PricingRuleDB
	err := r.querier.QueryRow(ctx, query, id).Scan(ruleDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrPricingRuleNotFound
		}
		return nil, fmt.Errorf("unexpected pricing repository getrule error: %w", err)
	}

	return RuleToDomain(&ruleDB), nil
}

func (r *Repository) ListRules(ctx context.Context, filter entities.PricingRuleFilter) ([]entities.PricingRule, error) {
	builder := qb.
		Select(ruleColumns).
		From("pricing_rules").
		OrderBy("priority DESC", "id ASC")

	if filter.RuleType != nil {
		builder = builder.Where(sq.Eq{"rule_type": filter.RuleType.String()})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pricing repository listrules error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected pricing repository listrules error: %w", err)
	}
	defer rows.Close()

	rulesDB := make([]PricingRuleDB, 0, 16)
	for rows.Next() {
		var ruleDB PricingRuleDB
		if err := rows.Scan(ruleDB.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected pricing repository listrules error: %w", err)
		}
		rulesDB = append(rulesDB, ruleDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected pricing repository listrules error: %w", err)
	}

	return RuleToDomainList(rulesDB), nil
}

func (r *Repository) CreateRoutePricing(ctx context.Context, p entities.RoutePricingModify) (*entities.RoutePricing, error) {
	query := `INSERT INTO route_pricing
			(route_id, category_id, base_price, surge_multiplier, valid_from, valid_until, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'draft')
		RETURNING ` + routePricingColumns

	var pricingDB RoutePricingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		p.RouteID,
		p.CategoryID,
		p.BasePrice,
		p.SurgeMultiplier,
		p.Validity.From,
		p.Validity.Until,
	).Scan(pricingDB.scanTargets()...)
	if err != nil {
		return nil, fmt.Errorf("unexpected pricing repository createroutepricing error: %w", err)
	}

	return RoutePricingToDomain(&pricingDB), nil
}

func (r *Repository) GetRoutePricing(ctx context.Context, id int64) (*entities.RoutePricing, error) {
	query := `SELECT ` + routePricingColumns + `
		FROM route_pricing
		WHERE id = $1`

	var pricingDB RoutePricingDB
	err := r.querier.QueryRow(ctx, query, id).Scan(pricingDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrRoutePricingNotFound
		}
		return nil, fmt.Errorf("unexpected pricing repository getroutepricing error: %w", err)
	}

	return RoutePricingToDomain(&pricingDB), nil
}

// SetRoutePricingStatus relies on the route_pricing_no_overlap exclusion
// constraint as the last line of defence against overlapping published windows.
func (r *Repository) SetRoutePricingStatus(ctx context.Context, id int64, status entities.LifecycleStatus) (*entities.RoutePricing, error) {
	query := `UPDATE route_pricing
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + routePricingColumns

	var pricingDB RoutePricingDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).Scan(pricingDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrRoutePricingNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrExclusionViolation) {
			return nil, pricing.ErrRoutePricingOverlap
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, pricing.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected pricing repository setroutepricingstatus error: %w", err)
	}

	return RoutePricingToDomain(&pricingDB), nil
}

func (r *Repository) ListRoutePricing(ctx context.Context, filter entities.RoutePricingFilter) ([]entities.RoutePricing, error) {
	builder := qb.
		Select(routePricingColumns).
		From("route_pricing").
		OrderBy("route_id", "id")

	if filter.RouteID != nil {
		builder = builder.Where(sq.Eq{"route_id": *filter.RouteID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pricing repository listroutepricing error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected pricing repository listroutepricing error: %w", err)
	}
	defer rows.Close()

	pricingDB := make([]RoutePricingDB, 0, 8)
	for rows.Next() {
		var p RoutePricingDB
		if err := rows.Scan(p.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected pricing repository listroutepricing error: %w", err)
		}
		pricingDB = append(pricingDB, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected pricing repository listroutepricing error: %w", err)
	}

	return RoutePricingToDomainList(pricingDB), nil
}
