package pricing_rules_get

import (
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/entities"
	"builty-service/internal/handlers/rest/response"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter entities.PricingRuleFilter
	if ruleType := query.Get("rule_type"); ruleType != "" {
		t := entities.PricingRuleType(ruleType)
		filter.RuleType = &t
	}
	if status := query.Get("status"); status != "" {
		s := entities.LifecycleStatus(status)
		filter.Status = &s
	}

	rules, err := h.service.ListRules(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PricingRulesFromEntity(rules))
}
