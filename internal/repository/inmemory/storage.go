package inmemory

import (
	"context"
	"sync"
	"taskBoard/internal/logger"
	"taskBoard/internal/models"

	"github.com/google/uuid"
)

// Storage хранит пользователей, доски и задачи в памяти процесса.
// Каждая операция выполняется под одним мьютексом; наружу отдаются копии записей.
type Storage struct {
	mtx *sync.RWMutex

	users    map[uuid.UUID]*models.User
	userIDs  []uuid.UUID
	boards   map[uuid.UUID]*models.Board
	boardIDs []uuid.UUID
	tasks    map[uuid.UUID]*models.Task
	taskIDs  []uuid.UUID

	newID func() uuid.UUID
}

func NewStorage() *Storage {
	return &Storage{
		mtx:    &sync.RWMutex{},
		users:  make(map[uuid.UUID]*models.User),
		boards: make(map[uuid.UUID]*models.Board),
		tasks:  make(map[uuid.UUID]*models.Task),
		newID:  uuid.New,
	}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info("Repository: Хранилище доступно")
	return nil
}

// уникальный id, который никогда не выдавался раньше
func (s *Storage) nextID() uuid.UUID {
	for {
		id := s.newID()
		_, u := s.users[id]
		_, b := s.boards[id]
		_, t := s.tasks[id]
		if !u && !b && !t {
			return id
		}
	}
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for ind, val := range ids {
		if val == id {
			return append(ids[:ind], ids[ind+1:]...)
		}
	}
	return ids
}
