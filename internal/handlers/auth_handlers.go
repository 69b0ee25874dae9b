package handlers

import (
	"net/http"
	"taskBoard/internal/auth"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/logger"
	"taskBoard/internal/middleware"
	"time"

	"go.uber.org/zap"
)

type AuthHandler struct {
	AuthService   AuthService
	SecureCookies bool
}

func NewAuthHandler(authService AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		AuthService:   authService,
		SecureCookies: secureCookies,
	}
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CredentialsRequest
	if err := decodeJSON(w, r, &request); err != nil {
		handleError(w, r, err, "register")
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), request.Email, request.Password)
	if err != nil {
		handleError(w, r, err, "register")
		return
	}

	h.setSessionCookie(w, token)

	logger.Info("HTTP_OUT: Пользователь зарегистрирован",
		zap.String("user_id", user.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithMessage(w, http.StatusCreated, "User registered successfully",
		toPayload("user", dto.FromUser(user)))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CredentialsRequest
	if err := decodeJSON(w, r, &request); err != nil {
		handleError(w, r, err, "login")
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		handleError(w, r, err, "login")
		return
	}

	h.setSessionCookie(w, token)

	logger.Info("HTTP_OUT: Вход выполнен",
		zap.String("user_id", user.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithMessage(w, http.StatusOK, "Login successful",
		toPayload("user", dto.FromUser(user)))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	responseWithMessage(w, http.StatusOK, "Logout successful")
}

// CurrentUser отдаёт пользователя сессии без хеша пароля
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	user, err := h.AuthService.CurrentUser(r.Context(), p.ID)
	if err != nil {
		handleError(w, r, err, "current_user")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("user", dto.FromUser(user)))
}
