package config_put

import (
	"encoding/json"
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/handlers/rest/response"
	"builty-service/internal/pkg/auth"
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
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, h.log, err.Error())
		return
	}

	key := mux.Vars(r)["key"]

	var body dto.ConfigDraft
	err = json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	entry, err := h.service.SetDraft(r.Context(), key, body.Value, body.Metadata(), actor.ID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("key", entry.Key),
		logger.NewField("actor_id", actor.ID),
	).Info("config draft saved")

	response.JSON(w, h.log, http.StatusOK, dto.ConfigEntryFromEntity(entry))
}
