package inmemory

import (
	"context"
	"taskBoard/internal/logger"
	"taskBoard/internal/models"
	repo "taskBoard/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Storage) CreateBoard(ctx context.Context, draft models.Board) (*models.Board, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	board := draft
	board.ID = s.nextID()
	board.CreatedAt = time.Now().UTC()
	board.UpdatedAt = nil

	s.boards[board.ID] = &board
	s.boardIDs = append(s.boardIDs, board.ID)

	cp := board
	return &cp, nil
}

func (s *Storage) GetBoardByID(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	board, ok := s.boards[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *board
	return &cp, nil
}

func (s *Storage) GetBoardsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*models.Board{}
	for _, id := range s.boardIDs {
		board := s.boards[id]
		if board.UserID != ownerID {
			continue
		}
		cp := *board
		res = append(res, &cp)
	}
	return res, nil
}

func (s *Storage) UpdateBoard(ctx context.Context, id uuid.UUID, options ...models.BoardOption) (*models.Board, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, ok := s.boards[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	updated := *stored
	for _, opt := range options {
		if opt != nil {
			opt(&updated)
		}
	}
	// владелец и идентификатор не меняются
	updated.ID = stored.ID
	updated.UserID = stored.UserID
	updated.CreatedAt = stored.CreatedAt

	now := time.Now().UTC()
	updated.UpdatedAt = &now
	*stored = updated

	cp := updated
	return &cp, nil
}

// DeleteBoard удаляет доску вместе со всеми её задачами.
func (s *Storage) DeleteBoard(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.boards[id]; !ok {
		return repo.ErrNotFound
	}

	removed := 0
	kept := s.taskIDs[:0]
	for _, taskID := range s.taskIDs {
		if s.tasks[taskID].BoardID == id {
			delete(s.tasks, taskID)
			removed++
			continue
		}
		kept = append(kept, taskID)
	}
	s.taskIDs = kept

	delete(s.boards, id)
	s.boardIDs = removeID(s.boardIDs, id)

	logger.Info("Repository: Доска удалена",
		zap.String("board_id", id.String()),
		zap.Int("tasks_removed", removed))
	return nil
}
