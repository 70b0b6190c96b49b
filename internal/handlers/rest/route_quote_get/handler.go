package route_quote_get

import (
	"net/http"

	"builty-service/internal/dto"
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
	routeID, err := request.OptionalInt64(r, "routeId")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}
	if routeID == nil {
		response.BadRequest(w, h.log, "routeId is required")
		return
	}

	categoryID, err := request.OptionalInt64(r, "categoryId")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	quote, err := h.service.QuoteBasePrice(r.Context(), *routeID, categoryID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.RouteQuoteFromEntity(quote))
}
