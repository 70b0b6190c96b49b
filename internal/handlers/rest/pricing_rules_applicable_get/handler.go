package pricing_rules_applicable_get

import (
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/entities"
	"builty-service/internal/handlers/rest/request"
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
	ruleCtx, err := parseRuleContext(r)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	rules, err := h.service.ResolveApplicable(r.Context(), ruleCtx)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PricingRulesFromEntity(rules))
}

func parseRuleContext(r *http.Request) (entities.RuleContext, error) {
	var ruleCtx entities.RuleContext

	if ruleType := r.URL.Query().Get("rule_type"); ruleType != "" {
		t := entities.PricingRuleType(ruleType)
		ruleCtx.RuleType = &t
	}

	categoryID, err := request.OptionalInt64(r, "category_id")
	if err != nil {
		return entities.RuleContext{}, err
	}
	ruleCtx.CategoryID = categoryID

	routeID, err := request.OptionalInt64(r, "route_id")
	if err != nil {
		return entities.RuleContext{}, err
	}
	ruleCtx.RouteID = routeID

	value, err := request.OptionalDecimal(r, "value")
	if err != nil {
		return entities.RuleContext{}, err
	}
	ruleCtx.Value = value

	return ruleCtx, nil
}
