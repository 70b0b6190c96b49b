package builty_post

import (
	"encoding/json"
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/handlers/rest/response"
	"builty-service/internal/pkg/auth"
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
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, h.log, err.Error())
		return
	}

	var createDTO dto.BuiltyCreate
	err = json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	res, err := h.service.Create(r.Context(), actor, createDTO.ToEntity())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("builty_id", res.ID),
		logger.NewField("document_number", res.DocumentNumber),
	).Info("builty issued")

	response.JSON(w, h.log, http.StatusCreated, dto.BuiltyFromEntity(res))
}
