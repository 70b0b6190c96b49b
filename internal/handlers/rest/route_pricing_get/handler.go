package route_pricing_get

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
	routeID, err := request.OptionalInt64(r, "route_id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	filter := entities.RoutePricingFilter{RouteID: routeID}
	if status := r.URL.Query().Get("status"); status != "" {
		s := entities.LifecycleStatus(status)
		filter.Status = &s
	}

	list, err := h.service.ListRoutePricing(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.RoutePricingListFromEntity(list))
}
