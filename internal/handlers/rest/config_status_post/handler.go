package config_status_post

import (
	"context"
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/entities"
	"builty-service/internal/handlers/rest/response"
	"builty-service/internal/pkg/auth"
	"builty-service/pkg/logger"
	"github.com/gorilla/mux"
)

const (
	actionPublish   = "publish"
	actionUnpublish = "unpublish"
	actionArchive   = "archive"
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

	vars := mux.Vars(r)
	key, action := vars["key"], vars["action"]

	var transition func(ctx context.Context, key string, actorID int64) (*entities.ConfigEntry, error)
	switch action {
	case actionPublish:
		transition = h.service.Publish
	case actionUnpublish:
		transition = h.service.Unpublish
	case actionArchive:
		transition = h.service.Archive
	default:
		response.BadRequest(w, h.log, "action must be one of publish, unpublish, archive")
		return
	}

	entry, err := transition(r.Context(), key, actor.ID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("key", entry.Key),
		logger.NewField("status", entry.Status.String()),
		logger.NewField("actor_id", actor.ID),
	).Info("config status changed")

	response.JSON(w, h.log, http.StatusOK, dto.ConfigEntryFromEntity(entry))
}
