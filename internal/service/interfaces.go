package service

import (
	"context"
	"taskBoard/internal/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type BoardRepository interface {
	CreateBoard(ctx context.Context, draft models.Board) (*models.Board, error)
	GetBoardByID(ctx context.Context, id uuid.UUID) (*models.Board, error)
	GetBoardsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, error)
	UpdateBoard(ctx context.Context, id uuid.UUID, options ...models.BoardOption) (*models.Board, error)
	DeleteBoard(ctx context.Context, id uuid.UUID) error
}

type TaskRepository interface {
	CreateTask(ctx context.Context, draft models.Task) (*models.Task, error)
	GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetTasksByBoard(ctx context.Context, boardID uuid.UUID) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, options ...models.TaskOption) (*models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// Storage - всё хранилище целиком, его собирает app
type Storage interface {
	UserRepository
	BoardRepository
	TaskRepository
	HealthCheck(ctx context.Context) error
}

// Credentials - хеширование паролей и сессионные токены
type Credentials interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	IssueToken(principalID uuid.UUID) (string, error)
	VerifyToken(token string) (uuid.UUID, error)
}
