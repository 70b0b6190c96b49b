package builty_verify_get

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

	var token *string
	if r.URL.Query().Has("token") {
		t := r.URL.Query().Get("token")
		token = &t
	}

	verification, err := h.service.Verify(r.Context(), documentNumber, token)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.VerificationFromEntity(verification))
}
