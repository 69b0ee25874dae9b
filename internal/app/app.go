package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"taskBoard/internal/auth"
	"taskBoard/internal/config"
	"taskBoard/internal/handlers"
	"taskBoard/internal/logger"
	"taskBoard/internal/repository/inmemory"
	"taskBoard/internal/service"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config    *config.Config
	server    *http.Server
	handler   http.Handler
	storage   service.Storage // интерфейс!
	shutdowns []func(ctx context.Context) error
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(ctx context.Context) error, 0),
	}
}

func (a *App) Init(ctx context.Context) (*App, error) {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return nil, fmt.Errorf("инициализация логгера: %w", err)
	}

	if a.config.UsesDevSecret() {
		logger.Warn("App: JWT секрет не задан, используется секрет для разработки")
	}

	a.storage = inmemory.NewStorage()
	if err := a.storage.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("проверка хранилища: %w", err)
	}

	creds, err := auth.NewCredentials(a.config.Auth.JWTSecret, auth.WithCost(a.config.Auth.BcryptCost))
	if err != nil {
		return nil, fmt.Errorf("инициализация учётных данных: %w", err)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Auth:           service.NewAuthService(a.storage, creds),
		Boards:         service.NewBoardService(a.storage),
		Tasks:          service.NewTaskService(a.storage, a.storage),
		Health:         a.storage,
		SecureCookies:  a.config.IsProduction(),
		AllowedOrigins: a.config.CORS.AllowedOrigins,
	})
	a.handler = otelhttp.NewHandler(router, "taskboard")

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      a.handler,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	a.shutdowns = append(a.shutdowns, func(ctx context.Context) error {
		logger.Info("Остановка HTTP сервера...")
		return a.server.Shutdown(ctx)
	})
	a.shutdowns = append(a.shutdowns, func(ctx context.Context) error {
		logger.Info("Завершение работы логгирования...")
		// Sync для stderr на части систем всегда возвращает ошибку
		_ = logger.Sync()
		return nil
	})

	logger.Info("App: Приложение инициализировано",
		zap.String("environment", a.config.Environment),
		zap.String("addr", a.server.Addr))
	return a, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

// Run обслуживает запросы до отмены ctx, затем аккуратно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	if a.server == nil {
		return errors.New("приложение не инициализировано")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP сервер: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()
		return a.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	var err error
	for _, shutdown := range a.shutdowns {
		err = multierr.Append(err, shutdown(ctx))
	}
	a.shutdowns = nil
	return err
}
