package builty_photo_post

import (
	"errors"
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/entities"
	"builty-service/internal/handlers/rest/request"
	"builty-service/internal/handlers/rest/response"
	"builty-service/internal/pkg/auth"
	"builty-service/internal/service/builty"
	"builty-service/pkg/logger"
)

const (
	formField = "file"
	// запас на заголовки multipart
	multipartOverhead = 1 << 20
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

	id, err := request.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, builty.MaxPhotoSize+multipartOverhead)
	err = r.ParseMultipartForm(builty.MaxPhotoSize)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, h.log, builty.ErrPhotoTooLarge)
			return
		}
		response.BadRequest(w, h.log, "multipart form with a file field is required")
		return
	}

	file, header, err := r.FormFile(formField)
	if err != nil {
		response.BadRequest(w, h.log, "multipart form with a file field is required")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.log.With(logger.NewField("error", err)).Warn("close uploaded file")
		}
	}()

	url, err := h.service.UploadPhoto(r.Context(), id, actor, entities.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.PhotoUpload{URL: url})
}
