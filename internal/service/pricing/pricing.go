package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"builty-service/internal/entities"
	"builty-service/pkg/logger"
	"builty-service/pkg/tx"
)

type Service struct {
	rules     RuleRepository
	routes    RoutePricingRepository
	txManager TxManager
	log       serviceLogger
	now       func() time.Time
}

func New(rules RuleRepository, routes RoutePricingRepository, txManager TxManager, log serviceLogger) *Service {
	return &Service{
		rules:     rules,
		routes:    routes,
		txManager: txManager,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ResolveApplicable(ctx context.Context, ruleCtx entities.RuleContext) ([]entities.PricingRule, error) {
	published := entities.StatusPublished
	rules, err := s.rules.ListRules(ctx, entities.PricingRuleFilter{
		RuleType: ruleCtx.RuleType,
		Status:   &published,
	})
	if err != nil {
		return nil, fmt.Errorf("list published rules: %w", err)
	}

	return Resolve(rules, ruleCtx, s.now()), nil
}

func (s *Service) CreateRule(ctx context.Context, rule entities.PricingRuleModify) (*entities.PricingRule, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	created, err := s.rules.CreateRule(ctx, rule)
	if err != nil {
		return nil, fmt.Errorf("create pricing rule: %w", err)
	}
	return created, nil
}

// UpdateRule replaces every editable attribute, the status is left untouched.
func (s *Service) UpdateRule(ctx context.Context, id int64, rule entities.PricingRuleModify) (*entities.PricingRule, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	updated, err := s.rules.UpdateRule(ctx, id, rule)
	if err != nil {
		return nil, fmt.Errorf("update pricing rule: %w", err)
	}
	return updated, nil
}

func (s *Service) SetRuleStatus(ctx context.Context, id int64, status entities.LifecycleStatus) (*entities.PricingRule, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	rule, err := s.rules.SetRuleStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("set pricing rule status: %w", err)
	}

	s.log.Info("pricing rule status changed",
		logger.NewField("rule_id", id),
		logger.NewField("status", status.String()),
	)
	return rule, nil
}

func (s *Service) GetRule(ctx context.Context, id int64) (*entities.PricingRule, error) {
	rule, err := s.rules.GetRule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pricing rule: %w", err)
	}
	return rule, nil
}

func (s *Service) ListRules(ctx context.Context, filter entities.PricingRuleFilter) ([]entities.PricingRule, error) {
	if filter.RuleType != nil && !filter.RuleType.IsValid() {
		return nil, ErrInvalidRuleType
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	rules, err := s.rules.ListRules(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pricing rules: %w", err)
	}
	return rules, nil
}

func (s *Service) CreateRoutePricing(ctx context.Context, pricing entities.RoutePricingModify) (*entities.RoutePricing, error) {
	if err := validateRoutePricing(pricing); err != nil {
		return nil, err
	}

	created, err := s.routes.CreateRoutePricing(ctx, pricing)
	if err != nil {
		return nil, fmt.Errorf("create route pricing: %w", err)
	}
	return created, nil
}

// SetRoutePricingStatus rejects publishing an entry whose window overlaps another
// published entry of the same (route, category) bucket.
func (s *Service) SetRoutePricingStatus(ctx context.Context, id int64, status entities.LifecycleStatus) (*entities.RoutePricing, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var updated *entities.RoutePricing
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.routes.GetRoutePricing(ctx, id)
		if err != nil {
			return err
		}

		if status == entities.StatusPublished && current.Status != entities.StatusPublished {
			if err := s.checkOverlap(ctx, *current); err != nil {
				return err
			}
		}

		updated, err = s.routes.SetRoutePricingStatus(ctx, id, status)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrRoutePricingOverlap) {
			s.log.Warn("route pricing overlap rejected",
				logger.NewField("route_pricing_id", id),
			)
		}
		return nil, fmt.Errorf("set route pricing status: %w", mapTxError(err))
	}

	s.log.Info("route pricing status changed",
		logger.NewField("route_pricing_id", id),
		logger.NewField("status", status.String()),
	)
	return updated, nil
}

func (s *Service) checkOverlap(ctx context.Context, candidate entities.RoutePricing) error {
	published := entities.StatusPublished
	existing, err := s.routes.ListRoutePricing(ctx, entities.RoutePricingFilter{
		RouteID: &candidate.RouteID,
		Status:  &published,
	})
	if err != nil {
		return fmt.Errorf("list published route pricing: %w", err)
	}

	for _, other := range existing {
		if other.ID == candidate.ID {
			continue
		}
		if candidate.SameBucket(other) && candidate.Validity.Overlaps(other.Validity) {
			return fmt.Errorf("%w: conflicts with %d", ErrRoutePricingOverlap, other.ID)
		}
	}
	return nil
}

func (s *Service) ListRoutePricing(ctx context.Context, filter entities.RoutePricingFilter) ([]entities.RoutePricing, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	list, err := s.routes.ListRoutePricing(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list route pricing: %w", err)
	}
	return list, nil
}

// QuoteBasePrice picks the active entry for the exact (route, category) pair and
// falls back to the route-wide entry when the category has none.
func (s *Service) QuoteBasePrice(ctx context.Context, routeID int64, categoryID *int64) (*entities.RouteQuote, error) {
	if routeID <= 0 {
		return nil, ErrInvalidRouteID
	}

	published := entities.StatusPublished
	list, err := s.routes.ListRoutePricing(ctx, entities.RoutePricingFilter{
		RouteID: &routeID,
		Status:  &published,
	})
	if err != nil {
		return nil, fmt.Errorf("quote base price: %w", err)
	}

	now := s.now()
	pricing := findActive(list, categoryID, now)
	if pricing == nil && categoryID != nil {
		pricing = findActive(list, nil, now)
	}
	if pricing == nil {
		return nil, ErrRoutePricingNotFound
	}

	return &entities.RouteQuote{
		RoutePricingID:  pricing.ID,
		RouteID:         pricing.RouteID,
		CategoryID:      pricing.CategoryID,
		BasePrice:       pricing.BasePrice,
		SurgeMultiplier: pricing.SurgeMultiplier,
		QuotedPrice:     pricing.BasePrice.Mul(pricing.SurgeMultiplier).Round(2),
	}, nil
}

func findActive(list []entities.RoutePricing, categoryID *int64, at time.Time) *entities.RoutePricing {
	var found *entities.RoutePricing
	for i := range list {
		p := &list[i]
		if !p.IsActiveAt(at) {
			continue
		}
		if categoryID == nil {
			if p.CategoryID != nil {
				continue
			}
		} else if p.CategoryID == nil || *p.CategoryID != *categoryID {
			continue
		}
		// при корректных данных активна ровно одна запись, берём самую свежую
		if found == nil || p.ID > found.ID {
			found = p
		}
	}
	return found
}

func mapTxError(err error) error {
	if errors.Is(err, tx.ErrSerializationFailure) && !errors.Is(err, ErrConcurrentModification) {
		return fmt.Errorf("%w: %w", ErrConcurrentModification, err)
	}
	return err
}
