package auth

import (
	"net/http"
	"slices"
	"strings"

	"builty-service/internal/entities"
	"builty-service/internal/handlers/rest/response"
	"builty-service/internal/pkg/auth"
	"builty-service/pkg/logger"
)

const bearerPrefix = "Bearer "

// Authenticate puts the actor of a valid bearer token into the request context.
func Authenticate(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				response.Unauthorized(w, log, "missing bearer token")
				return
			}

			actor, err := parser.Parse(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("rejected bearer token")
				response.Unauthorized(w, log, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}

// RequireRoles must run after Authenticate.
func RequireRoles(log handlerLogger, roles ...entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := auth.ActorFromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, log, err.Error())
				return
			}
			if !slices.Contains(roles, actor.Role) {
				response.Forbidden(w, log, "role "+actor.Role.String()+" is not allowed")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
