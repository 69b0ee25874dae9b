package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"taskBoard/internal/logger"
	"taskBoard/internal/models"
	rep "taskBoard/internal/repository"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BoardService struct {
	boards BoardRepository
}

func NewBoardService(boards BoardRepository) *BoardService {
	return &BoardService{
		boards: boards,
	}
}

func validateBoardTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", NewValidationError("title", "Board title is required")
	}
	if utf8.RuneCountInString(title) > models.BoardTitleMaxLen {
		return "", NewValidationError("title", "Board title must be less than 100 characters")
	}
	return title, nil
}

func (s *BoardService) ListBoards(ctx context.Context, userID uuid.UUID) ([]*models.Board, error) {
	boards, err := s.boards.GetBoardsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("получение досок: %w", err)
	}
	return boards, nil
}

func (s *BoardService) CreateBoard(ctx context.Context, userID uuid.UUID, title string) (*models.Board, error) {
	title, err := validateBoardTitle(title)
	if err != nil {
		return nil, err
	}

	board, err := s.boards.CreateBoard(ctx, models.Board{UserID: userID, Title: title})
	if err != nil {
		return nil, fmt.Errorf("создание доски: %w", err)
	}

	logger.Info("Service: Доска создана",
		zap.String("board_id", board.ID.String()),
		zap.String("user_id", userID.String()))
	return board, nil
}

func (s *BoardService) GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*models.Board, error) {
	return loadOwnedBoard(ctx, s.boards, userID, boardID)
}

func (s *BoardService) UpdateBoard(ctx context.Context, userID, boardID uuid.UUID, title string) (*models.Board, error) {
	title, err := validateBoardTitle(title)
	if err != nil {
		return nil, err
	}

	if _, err := loadOwnedBoard(ctx, s.boards, userID, boardID); err != nil {
		return nil, err
	}

	board, err := s.boards.UpdateBoard(ctx, boardID, models.WithBoardTitle(title))
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, NewNotFound(msgBoardNotFound)
		}
		return nil, fmt.Errorf("обновление доски: %w", err)
	}
	return board, nil
}

// DeleteBoard удаляет доску вместе с её задачами.
func (s *BoardService) DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	if _, err := loadOwnedBoard(ctx, s.boards, userID, boardID); err != nil {
		return err
	}

	if err := s.boards.DeleteBoard(ctx, boardID); err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return NewNotFound(msgBoardNotFound)
		}
		return fmt.Errorf("удаление доски: %w", err)
	}
	return nil
}

func loadOwnedBoard(ctx context.Context, boards BoardRepository, userID, boardID uuid.UUID) (*models.Board, error) {
	board, err := boards.GetBoardByID(ctx, boardID)
	if err != nil {
		if !errors.Is(err, rep.ErrNotFound) {
			return nil, fmt.Errorf("получение доски: %w", err)
		}
		board = nil
	}

	if err := CheckBoardOwnership(board, userID); err != nil {
		logger.Info("Service: Доступ к доске отклонён",
			zap.String("board_id", boardID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, err
	}
	return board, nil
}
