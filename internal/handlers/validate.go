package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"taskBoard/internal/middleware"
	"taskBoard/internal/models"
	"taskBoard/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == target
}

// decodeJSON читает тело запроса; пустое тело равносильно пустому объекту
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Header.Get("Content-Type") != "" && !checkContentType(r, "application/json") {
		return service.NewValidationError("body", "Content-Type must be application/json")
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return service.NewValidationError("body", "Invalid request body")
	}
	return nil
}

// id не в формате uuid не может ссылаться на запись
func parseID(r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func principal(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		responseWithError(w, http.StatusUnauthorized, "Access denied. No token provided.")
	}
	return p, ok
}
