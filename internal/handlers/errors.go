package handlers

import (
	"errors"
	"net/http"
	"taskBoard/internal/logger"
	"taskBoard/internal/middleware"
	"taskBoard/internal/service"

	"go.uber.org/zap"
)

// handleError переводит ошибку сервиса в HTTP ответ
func handleError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if handleBusinessError(w, r, err, operation) {
		return
	}

	logger.Error("HTTP: Ошибка Service", err,
		zap.String("operation", operation),
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("client_ip", r.RemoteAddr))

	responseWithError(w, http.StatusInternalServerError, "Internal server error")
}

func handleBusinessError(w http.ResponseWriter, r *http.Request, err error, operation string) bool {
	var businessErr *service.BusinessError
	if !errors.As(err, &businessErr) {
		return false
	}

	statusCode := mapBusinessErrorToHTTP(businessErr.Code)

	logger.Warn("HTTP: Бизнес-ошибка",
		zap.String("operation", operation),
		zap.String("error_code", businessErr.Code),
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Int("http_status", statusCode))

	responseWithJSON(w, statusCode,
		toPayload("error", businessErr.Message),
		toPayload("code", businessErr.Code),
	)
	return true
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeValidation:
		return http.StatusBadRequest
	case service.CodeUnauthenticated:
		return http.StatusUnauthorized
	case service.CodeForbidden:
		return http.StatusForbidden
	case service.CodeNotFound, service.CodeBoardNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
