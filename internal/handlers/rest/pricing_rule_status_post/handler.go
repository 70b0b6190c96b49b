package pricing_rule_status_post

import (
	"encoding/json"
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
	id, err := request.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	var body dto.StatusChange
	err = json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	rule, err := h.service.SetRuleStatus(r.Context(), id, entities.LifecycleStatus(body.Status))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PricingRuleFromEntity(rule))
}
