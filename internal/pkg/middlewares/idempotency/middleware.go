package idempotency

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"builty-service/internal/dto"
	"builty-service/internal/handlers/rest/response"
	"builty-service/internal/pkg/auth"
	"builty-service/internal/pkg/redis"
	"builty-service/pkg/logger"
)

const (
	Header = "Idempotency-Key"

	maxKeyLength = 128
	lockTTL      = 30 * time.Second
	storeTimeout = 2 * time.Second
)

type cachedResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (w *responseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware replays the stored response of a repeated Idempotency-Key.
// Keys are scoped by the authenticated actor, requests without the header pass through.
func Middleware(log handlerLogger, store Store, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(Header)
			if key == "" || (r.Method != http.MethodPost && r.Method != http.MethodPut) {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > maxKeyLength {
				response.BadRequest(w, log, "idempotency key is too long")
				return
			}

			cacheKey := "idempotency:" + scope(r.Context()) + ":" + key
			reqLog := log.With(logger.NewField("idempotency_key", cacheKey))

			cached, err := load(r.Context(), store, cacheKey)
			switch {
			case err == nil:
				replay(w, reqLog, cached)
				return
			case !errors.Is(err, redis.ErrCacheMiss):
				// без redis обрабатываем запрос как обычный
				reqLog.Warn("idempotency store unavailable", logger.NewField("error", err))
				next.ServeHTTP(w, r)
				return
			}

			locked, err := store.Lock(r.Context(), cacheKey+":lock", lockTTL)
			if err != nil {
				reqLog.Warn("idempotency store unavailable", logger.NewField("error", err))
				next.ServeHTTP(w, r)
				return
			}
			if !locked {
				response.JSON(w, log, http.StatusConflict, dto.ErrorResponse{
					Code:    response.CodeConflict,
					Message: "request with this idempotency key is in progress",
				})
				return
			}

			// ответ мог сохраниться между промахом кэша и захватом блокировки
			cached, err = load(r.Context(), store, cacheKey)
			if err == nil {
				err = store.Unlock(r.Context(), cacheKey+":lock")
				if err != nil {
					reqLog.Warn("release idempotency lock", logger.NewField("error", err))
				}
				replay(w, reqLog, cached)
				return
			}

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			// запрос мог быть отменен, но ответ уже отдан
			ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), storeTimeout)
			defer cancel()

			if rw.statusCode < http.StatusInternalServerError {
				err = save(ctx, store, cacheKey, ttl, cachedResponse{
					StatusCode:  rw.statusCode,
					ContentType: rw.Header().Get("Content-Type"),
					Body:        rw.body.Bytes(),
				})
				if err != nil {
					reqLog.Error("store idempotent response", logger.NewField("error", err))
				}
			}

			err = store.Unlock(ctx, cacheKey+":lock")
			if err != nil {
				reqLog.Warn("release idempotency lock", logger.NewField("error", err))
			}
		})
	}
}

func replay(w http.ResponseWriter, log handlerLogger, cached *cachedResponse) {
	w.Header().Set("Content-Type", cached.ContentType)
	w.Header().Set("Idempotent-Replayed", "true")
	w.WriteHeader(cached.StatusCode)
	_, err := w.Write(cached.Body)
	if err != nil {
		log.Error("write replayed response", logger.NewField("error", err))
	}
}

func scope(ctx context.Context) string {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return "anonymous"
	}
	return actor.Role.String() + ":" + strconv.FormatInt(actor.ID, 10)
}

func load(ctx context.Context, store Store, key string) (*cachedResponse, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var cached cachedResponse
	err = json.Unmarshal(data, &cached)
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

func save(ctx context.Context, store Store, key string, ttl time.Duration, cached cachedResponse) error {
	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, data, ttl)
}
