package pricing_rule_post

import (
	"encoding/json"
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/handlers/rest/response"
	"builty-service/pkg/logger"
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
	var body dto.PricingRuleModify
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	rule, err := h.service.CreateRule(r.Context(), body.ToEntity())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("rule_id", rule.ID),
		logger.NewField("rule_type", rule.RuleType.String()),
	).Info("pricing rule created")

	response.JSON(w, h.log, http.StatusCreated, dto.PricingRuleFromEntity(rule))
}
