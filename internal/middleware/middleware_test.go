package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"taskBoard/internal/middleware"
	"taskBoard/internal/models"
	"taskBoard/internal/service"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthenticator - мок проверки токена
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, token string) (*models.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Principal), args.Error(1)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", seen)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

func TestLogging_PassesThrough(t *testing.T) {
	handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}

func TestSession(t *testing.T) {
	principal := &models.Principal{ID: uuid.New(), Email: "a@x.com"}

	tests := []struct {
		name          string
		cookie        *http.Cookie
		setupMock     func(*MockAuthenticator)
		wantStatus    int
		wantMessage   string
		wantPrincipal bool
	}{
		{
			name:        "no cookie",
			setupMock:   func(m *MockAuthenticator) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access denied. No token provided.",
		},
		{
			name:        "empty cookie",
			cookie:      &http.Cookie{Name: "token", Value: ""},
			setupMock:   func(m *MockAuthenticator) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access denied. No token provided.",
		},
		{
			name:   "invalid token",
			cookie: &http.Cookie{Name: "token", Value: "bad"},
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", mock.Anything, "bad").
					Return(nil, service.NewUnauthenticated("Invalid token.", nil))
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token.",
		},
		{
			name:   "user gone",
			cookie: &http.Cookie{Name: "token", Value: "orphan"},
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", mock.Anything, "orphan").
					Return(nil, service.NewUnauthenticated("Invalid token. User not found.", nil))
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token. User not found.",
		},
		{
			name:   "unexpected error",
			cookie: &http.Cookie{Name: "token", Value: "boom"},
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", mock.Anything, "boom").Return(nil, errors.New("storage down"))
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token.",
		},
		{
			name:   "valid token",
			cookie: &http.Cookie{Name: "token", Value: "good"},
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", mock.Anything, "good").Return(principal, nil)
			},
			wantStatus:    http.StatusOK,
			wantPrincipal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticator := new(MockAuthenticator)
			tt.setupMock(authenticator)

			reached := false
			handler := middleware.Session(authenticator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				got, ok := middleware.PrincipalFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, *principal, got)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/boards", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantPrincipal, reached)
			if tt.wantMessage != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMessage, body["error"])
			}
			authenticator.AssertExpectations(t)
		})
	}
}

func TestPrincipalFromContext_Missing(t *testing.T) {
	_, ok := middleware.PrincipalFromContext(context.Background())
	assert.False(t, ok)
}

func TestCORS(t *testing.T) {
	handler := middleware.CORS([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/boards", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	// без списка origin middleware ничего не добавляет
	passthrough := middleware.CORS(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	w = httptest.NewRecorder()
	passthrough.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
