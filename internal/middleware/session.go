package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"taskBoard/internal/logger"
	"taskBoard/internal/models"
	"taskBoard/internal/service"

	"go.uber.org/zap"
)

const SessionCookieName = "token"

const PrincipalKey contextKey = "principal"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Principal, error)
}

// Session пропускает запрос дальше только с действительным сессионным cookie.
func Session(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := GetRequestID(r.Context())

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				logger.Warn("HTTP: Запрос без токена",
					zap.String("request_id", requestId),
					zap.String("path", r.URL.Path))
				unauthorized(w, "Access denied. No token provided.")
				return
			}

			principal, err := authenticator.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				logger.Warn("HTTP: Токен отклонён",
					zap.String("request_id", requestId),
					zap.String("path", r.URL.Path),
					zap.Error(err))

				var busErr *service.BusinessError
				if errors.As(err, &busErr) && busErr.Code == service.CodeUnauthenticated {
					unauthorized(w, busErr.Message)
					return
				}
				unauthorized(w, "Invalid token.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), *principal)))
		})
	}
}

func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(models.Principal)
	return principal, ok
}

func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"error": message,
		"code":  service.CodeUnauthenticated,
	})
}
