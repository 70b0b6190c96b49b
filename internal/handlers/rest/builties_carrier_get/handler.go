package builties_carrier_get

import (
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/handlers/rest/request"
	"builty-service/internal/handlers/rest/response"
	"builty-service/internal/pkg/auth"
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
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, h.log, err.Error())
		return
	}

	filter, err := request.ListFilter(r)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	page, err := h.service.ListForCarrier(r.Context(), actor, filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.BuiltyPageFromEntity(page))
}
