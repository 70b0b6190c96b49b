package config_public_get

import (
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/handlers/rest/response"
	"builty-service/internal/service/configuration"
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
	entries, err := h.service.ListPublic(r.Context())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	res := make([]dto.PublicConfigEntry, 0, len(entries))
	for _, e := range entries {
		value, err := configuration.DecodeValue(e.DataType, e.Value)
		if err != nil {
			// битое значение пропускаем, остальные ключи отдаём
			h.log.With(
				logger.NewField("key", e.Key),
				logger.NewField("error", err),
			).Warn("skip undecodable public config")
			continue
		}
		res = append(res, dto.PublicConfigEntry{
			Key:      e.Key,
			Value:    value,
			DataType: e.DataType.String(),
		})
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
