package inmemory

import (
	"context"
	"taskBoard/internal/models"
	repo "taskBoard/internal/repository"
	"time"

	"github.com/google/uuid"
)

func (s *Storage) CreateTask(ctx context.Context, draft models.Task) (*models.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	task := draft
	task.ID = s.nextID()
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = nil
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	s.tasks[task.ID] = &task
	s.taskIDs = append(s.taskIDs, task.ID)

	cp := task
	return &cp, nil
}

func (s *Storage) GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *task
	return &cp, nil
}

func (s *Storage) GetTasksByBoard(ctx context.Context, boardID uuid.UUID) ([]*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*models.Task{}
	for _, id := range s.taskIDs {
		task := s.tasks[id]
		if task.BoardID != boardID {
			continue
		}
		cp := *task
		res = append(res, &cp)
	}
	return res, nil
}

func (s *Storage) UpdateTask(ctx context.Context, id uuid.UUID, options ...models.TaskOption) (*models.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, ok := s.tasks[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	updated := *stored
	for _, opt := range options {
		if opt != nil {
			opt(&updated)
		}
	}
	updated.ID = stored.ID
	updated.BoardID = stored.BoardID
	updated.CreatedAt = stored.CreatedAt

	now := time.Now().UTC()
	updated.UpdatedAt = &now
	*stored = updated

	cp := updated
	return &cp, nil
}

func (s *Storage) DeleteTask(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.tasks, id)
	s.taskIDs = removeID(s.taskIDs, id)
	return nil
}
