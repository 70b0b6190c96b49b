package builty_print_get

import (
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/handlers/rest/response"
	"github.com/gorilla/mux"
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
	documentNumber := mux.Vars(r)["documentNumber"]

	receipt, err := h.service.GetPrintView(r.Context(), documentNumber)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PrintViewFromEntity(receipt))
}
