package service_test

import (
	"context"
	"taskBoard/internal/models"
	"taskBoard/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBoardRepository - мок репозитория досок
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) CreateBoard(ctx context.Context, draft models.Board) (*models.Board, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardRepository) GetBoardByID(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardRepository) GetBoardsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Board), args.Error(1)
}

func (m *MockBoardRepository) UpdateBoard(ctx context.Context, id uuid.UUID, options ...models.BoardOption) (*models.Board, error) {
	args := m.Called(ctx, id, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardRepository) DeleteBoard(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskRepository - мок репозитория задач
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, draft models.Task) (*models.Task, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetTasksByBoard(ctx context.Context, boardID uuid.UUID) ([]*models.Task, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, id uuid.UUID, options ...models.TaskOption) (*models.Task, error) {
	args := m.Called(ctx, id, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ service.BoardRepository = (*MockBoardRepository)(nil)
var _ service.TaskRepository = (*MockTaskRepository)(nil)
