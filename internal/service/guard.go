package service

import (
	"taskBoard/internal/models"

	"github.com/google/uuid"
)

// проверки владения работают только с уже загруженными сущностями и ничего не читают сами

const (
	msgBoardNotFound  = "Board not found"
	msgTaskNotFound   = "Task not found"
	msgBoardForbidden = "Access denied. You can only access your own boards."
	msgTaskForbidden  = "Access denied. You can only access tasks from your own boards."
)

func CheckBoardOwnership(board *models.Board, userID uuid.UUID) error {
	if board == nil {
		return NewNotFound(msgBoardNotFound)
	}
	if board.UserID != userID {
		return NewForbidden(msgBoardForbidden)
	}
	return nil
}

// CheckTaskOwnership: владелец задачи - владелец её доски.
func CheckTaskOwnership(task *models.Task, board *models.Board, userID uuid.UUID) error {
	if task == nil {
		return NewNotFound(msgTaskNotFound)
	}
	if board == nil {
		return NewBusinessError(CodeBoardNotFound, msgBoardNotFound,
			ToDetail("board_id", task.BoardID.String()))
	}
	if board.UserID != userID {
		return NewForbidden(msgTaskForbidden)
	}
	return nil
}
