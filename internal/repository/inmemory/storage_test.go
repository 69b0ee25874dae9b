package inmemory_test

import (
	"context"
	"fmt"
	"sync"
	"taskBoard/internal/models"
	"taskBoard/internal/repository"
	"taskBoard/internal/repository/inmemory"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStorage_HealthCheck тестирует проверку здоровья
func TestStorage_HealthCheck(t *testing.T) {
	storage := inmemory.NewStorage()
	assert.NoError(t, storage.HealthCheck(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, storage.HealthCheck(ctx))
}

// TestStorage_CreateUser тестирует создание пользователя и уникальность email
func TestStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewStorage()

	user, err := storage.CreateUser(ctx, "a@x.com", "hash")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	_, err = storage.CreateUser(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	byEmail, err := storage.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := storage.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = storage.GetUserByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = storage.GetUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestStorage_CreateUser_Concurrent - одновременная регистрация одного email создаёт одного пользователя
func TestStorage_CreateUser_Concurrent(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewStorage()

	var wg sync.WaitGroup
	var mtx sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := storage.CreateUser(ctx, "race@x.com", "hash"); err == nil {
				mtx.Lock()
				created++
				mtx.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)
}

// TestStorage_Boards тестирует CRUD досок
func TestStorage_Boards(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewStorage()
	owner := uuid.New()
	stranger := uuid.New()

	first, err := storage.CreateBoard(ctx, models.Board{UserID: owner, Title: "Sprint 1"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Nil(t, first.UpdatedAt)

	second, err := storage.CreateBoard(ctx, models.Board{UserID: owner, Title: "Sprint 2"})
	require.NoError(t, err)
	_, err = storage.CreateBoard(ctx, models.Board{UserID: stranger, Title: "Other"})
	require.NoError(t, err)

	// Проверяем фильтр по владельцу и порядок вставки
	boards, err := storage.GetBoardsByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, first.ID, boards[0].ID)
	assert.Equal(t, second.ID, boards[1].ID)

	empty, err := storage.GetBoardsByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	updated, err := storage.UpdateBoard(ctx, first.ID, models.WithBoardTitle("Renamed"))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, owner, updated.UserID)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)

	got, err := storage.GetBoardByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	_, err = storage.UpdateBoard(ctx, uuid.New(), models.WithBoardTitle("x"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestStorage_UpdateBoard_KeepsOwner - опция не может сменить владельца
func TestStorage_UpdateBoard_KeepsOwner(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewStorage()
	owner := uuid.New()

	board, err := storage.CreateBoard(ctx, models.Board{UserID: owner, Title: "Mine"})
	require.NoError(t, err)

	updated, err := storage.UpdateBoard(ctx, board.ID, func(b *models.Board) {
		b.UserID = uuid.New()
	})
	require.NoError(t, err)
	assert.Equal(t, owner, updated.UserID)
}

// TestStorage_ReturnsCopies - изменение результата не затрагивает хранилище
func TestStorage_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewStorage()

	board, err := storage.CreateBoard(ctx, models.Board{UserID: uuid.New(), Title: "Original"})
	require.NoError(t, err)
	board.Title = "Mutated"

	got, err := storage.GetBoardByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)
}

// TestStorage_Tasks тестирует CRUD задач
func TestStorage_Tasks(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewStorage()
	boardID := uuid.New()

	task, err := storage.CreateTask(ctx, models.Task{BoardID: boardID, Title: "Write docs"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, "", task.Description)
	assert.Nil(t, task.DueDate)

	due := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	updated, err := storage.UpdateTask(ctx, task.ID,
		models.WithStatus(models.StatusCompleted),
		models.WithDescription("details"),
		models.WithDueDate(&due),
	)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, "details", updated.Description)
	require.NotNil(t, updated.DueDate)
	assert.True(t, due.Equal(*updated.DueDate))
	assert.NotNil(t, updated.UpdatedAt)

	cleared, err := storage.UpdateTask(ctx, task.ID, models.WithDueDate(nil))
	require.NoError(t, err)
	assert.Nil(t, cleared.DueDate)
	assert.Equal(t, "Write docs", cleared.Title)

	require.NoError(t, storage.DeleteTask(ctx, task.ID))
	_, err = storage.GetTaskByID(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, storage.DeleteTask(ctx, task.ID), repository.ErrNotFound)

	_, err = storage.UpdateTask(ctx, task.ID, models.WithTitle("x"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestStorage_DeleteBoard_Cascade тестирует каскадное удаление задач доски
func TestStorage_DeleteBoard_Cascade(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewStorage()
	owner := uuid.New()

	board, err := storage.CreateBoard(ctx, models.Board{UserID: owner, Title: "Work"})
	require.NoError(t, err)
	other, err := storage.CreateBoard(ctx, models.Board{UserID: owner, Title: "Home"})
	require.NoError(t, err)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		task, err := storage.CreateTask(ctx, models.Task{BoardID: board.ID, Title: fmt.Sprintf("task %d", i)})
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}
	survivor, err := storage.CreateTask(ctx, models.Task{BoardID: other.ID, Title: "keep me"})
	require.NoError(t, err)

	require.NoError(t, storage.DeleteBoard(ctx, board.ID))

	_, err = storage.GetBoardByID(ctx, board.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	tasks, err := storage.GetTasksByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	for _, id := range ids {
		_, err := storage.GetTaskByID(ctx, id)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	}

	// Задачи другой доски не затронуты
	kept, err := storage.GetTasksByBoard(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, survivor.ID, kept[0].ID)

	assert.ErrorIs(t, storage.DeleteBoard(ctx, board.ID), repository.ErrNotFound)
}

// TestStorage_ConcurrentAccess тестирует конкурентный доступ
func TestStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewStorage()
	board, err := storage.CreateBoard(ctx, models.Board{UserID: uuid.New(), Title: "Shared"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task, err := storage.CreateTask(ctx, models.Task{BoardID: board.ID, Title: fmt.Sprintf("t%d", i)})
			if err != nil {
				return
			}
			_, _ = storage.UpdateTask(ctx, task.ID, models.WithStatus(models.StatusCompleted))
			_, _ = storage.GetTasksByBoard(ctx, board.ID)
		}(i)
	}
	wg.Wait()

	tasks, err := storage.GetTasksByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 50)
	for _, task := range tasks {
		assert.Equal(t, models.StatusCompleted, task.Status)
	}
}
