package handlers

import (
	"net/http"
	"taskBoard/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	Auth           AuthService
	Boards         BoardService
	Tasks          TaskService
	Health         HealthChecker
	SecureCookies  bool
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	authHandler := NewAuthHandler(cfg.Auth, cfg.SecureCookies)
	boardHandler := NewBoardHandler(cfg.Boards)
	taskHandler := NewTaskHandler(cfg.Tasks)
	healthHandler := NewHealthHandler(cfg.Health)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responseWithError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responseWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", healthHandler.HealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register) // POST /auth/register
		r.Post("/login", authHandler.Login)       // POST /auth/login
		r.Post("/logout", authHandler.Logout)     // POST /auth/logout

		r.With(middleware.Session(cfg.Auth)).Get("/user", authHandler.CurrentUser) // GET /auth/user
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(cfg.Auth))

		r.Route("/boards", func(r chi.Router) {
			r.Get("/", boardHandler.GetBoards)  // GET /boards
			r.Post("/", boardHandler.PostBoard) // POST /boards

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", boardHandler.GetBoardByID)       // GET /boards/{id}
				r.Put("/", boardHandler.UpdateBoardByID)    // PUT /boards/{id}
				r.Delete("/", boardHandler.DeleteBoardByID) // DELETE /boards/{id}
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.PostTask) // POST /tasks

			r.Get("/board/{boardId}", taskHandler.GetTasksByBoard) // GET /tasks/board/{boardId}

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", taskHandler.GetTaskByID)       // GET /tasks/{id}
				r.Put("/", taskHandler.UpdateTaskByID)    // PUT /tasks/{id}
				r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /tasks/{id}
			})
		})
	})

	return r
}
