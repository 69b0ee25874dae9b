package handlers

import (
	"context"
	"taskBoard/internal/middleware"
	"taskBoard/internal/models"
	"taskBoard/internal/service"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.Principal, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type BoardService interface {
	ListBoards(ctx context.Context, userID uuid.UUID) ([]*models.Board, error)
	CreateBoard(ctx context.Context, userID uuid.UUID, title string) (*models.Board, error)
	GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*models.Board, error)
	UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, title string) (*models.Board, error)
	DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error
}

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, in service.CreateTaskInput) (*models.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, in service.UpdateTaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	GetTasksByBoard(ctx context.Context, userID, boardID uuid.UUID) (*models.Board, []*models.Task, error)
}

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

var (
	_ middleware.Authenticator = AuthService(nil)
	_ AuthService              = (*service.AuthService)(nil)
	_ BoardService             = (*service.BoardService)(nil)
	_ TaskService              = (*service.TaskService)(nil)
)
