package builty_print_pdf_get

import (
	"net/http"
	"strconv"

	"builty-service/internal/handlers/rest/response"
	"builty-service/pkg/logger"
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

	data, err := h.service.RenderPrintPDF(r.Context(), documentNumber)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+documentNumber+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write PDF response")
	}
}
