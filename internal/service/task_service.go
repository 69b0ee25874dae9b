package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"taskBoard/internal/logger"
	"taskBoard/internal/models"
	rep "taskBoard/internal/repository"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgBoardIDRequired   = "Board ID is required"
	msgTaskTitleRequired = "Task title is required"
	msgTaskTitleEmpty    = "Task title cannot be empty"
	msgTaskTitleTooLong  = "Task title must be less than 200 characters"
	msgDescriptionLong   = "Task description must be less than 1000 characters"
	msgInvalidStatus     = `Status must be either "pending" or "completed"`
	msgInvalidDueDate    = "Invalid due date format"
)

// форматы срока выполнения; значения без зоны считаются UTC
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

type CreateTaskInput struct {
	BoardID     string
	Title       string
	Description *string
	DueDate     *string
}

// UpdateTaskInput - частичное обновление, неустановленные поля не меняются
type UpdateTaskInput struct {
	Title       models.Optional[string]
	Description models.Optional[string]
	Status      models.Optional[string]
	DueDate     models.Optional[string]
}

type TaskService struct {
	tasks  TaskRepository
	boards BoardRepository
}

func NewTaskService(tasks TaskRepository, boards BoardRepository) *TaskService {
	return &TaskService{
		tasks:  tasks,
		boards: boards,
	}
}

func ParseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("неизвестный формат даты %q", value)
}

func validateTaskTitle(title, emptyMessage string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", NewValidationError("title", emptyMessage)
	}
	if utf8.RuneCountInString(title) > models.TaskTitleMaxLen {
		return "", NewValidationError("title", msgTaskTitleTooLong)
	}
	return title, nil
}

// длина описания проверяется до обрезки пробелов
func validateDescription(description string) (string, error) {
	if utf8.RuneCountInString(description) > models.TaskDescriptionMaxLen {
		return "", NewValidationError("description", msgDescriptionLong)
	}
	return strings.TrimSpace(description), nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, in CreateTaskInput) (*models.Task, error) {
	if in.BoardID == "" {
		return nil, NewValidationError("boardId", msgBoardIDRequired)
	}

	title, err := validateTaskTitle(in.Title, msgTaskTitleRequired)
	if err != nil {
		return nil, err
	}

	description := ""
	if in.Description != nil {
		if description, err = validateDescription(*in.Description); err != nil {
			return nil, err
		}
	}

	// id не в формате uuid не может существовать
	boardID, err := uuid.Parse(in.BoardID)
	if err != nil {
		return nil, NewNotFound(msgBoardNotFound)
	}

	board, err := loadOwnedBoard(ctx, s.boards, userID, boardID)
	if err != nil {
		return nil, err
	}

	var dueDate *time.Time
	if in.DueDate != nil && *in.DueDate != "" {
		parsed, err := ParseDueDate(*in.DueDate)
		if err != nil {
			return nil, NewValidationError("dueDate", msgInvalidDueDate)
		}
		dueDate = &parsed
	}

	task, err := s.tasks.CreateTask(ctx, models.Task{
		BoardID:     board.ID,
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
		DueDate:     dueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	logger.Info("Service: Задача создана",
		zap.String("task_id", task.ID.String()),
		zap.String("board_id", board.ID.String()))
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	return s.loadOwnedTask(ctx, userID, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, in UpdateTaskInput) (*models.Task, error) {
	if _, err := s.loadOwnedTask(ctx, userID, taskID); err != nil {
		return nil, err
	}

	options, err := updateOptions(in)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.UpdateTask(ctx, taskID, options...)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, NewNotFound(msgTaskNotFound)
		}
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}
	return task, nil
}

func updateOptions(in UpdateTaskInput) ([]models.TaskOption, error) {
	options := []models.TaskOption{}

	if in.Title.Set {
		if !in.Title.Valid {
			return nil, NewValidationError("title", msgTaskTitleEmpty)
		}
		title, err := validateTaskTitle(in.Title.Value, msgTaskTitleEmpty)
		if err != nil {
			return nil, err
		}
		options = append(options, models.WithTitle(title))
	}

	if in.Description.Set {
		description := ""
		if in.Description.Valid {
			var err error
			if description, err = validateDescription(in.Description.Value); err != nil {
				return nil, err
			}
		}
		options = append(options, models.WithDescription(description))
	}

	if in.Status.Set {
		status := models.Status(in.Status.Value)
		if !in.Status.Valid || !status.Valid() {
			return nil, NewValidationError("status", msgInvalidStatus)
		}
		options = append(options, models.WithStatus(status))
	}

	if in.DueDate.Set {
		if !in.DueDate.Valid || in.DueDate.Value == "" {
			options = append(options, models.WithDueDate(nil))
		} else {
			parsed, err := ParseDueDate(in.DueDate.Value)
			if err != nil {
				return nil, NewValidationError("dueDate", msgInvalidDueDate)
			}
			options = append(options, models.WithDueDate(&parsed))
		}
	}

	return options, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := s.loadOwnedTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.tasks.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return NewNotFound(msgTaskNotFound)
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}
	return nil
}

func (s *TaskService) GetTasksByBoard(ctx context.Context, userID, boardID uuid.UUID) (*models.Board, []*models.Task, error) {
	board, err := loadOwnedBoard(ctx, s.boards, userID, boardID)
	if err != nil {
		return nil, nil, err
	}

	tasks, err := s.tasks.GetTasksByBoard(ctx, boardID)
	if err != nil {
		return nil, nil, fmt.Errorf("получение задач доски: %w", err)
	}
	return board, tasks, nil
}

func (s *TaskService) loadOwnedTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetTaskByID(ctx, taskID)
	if err != nil {
		if !errors.Is(err, rep.ErrNotFound) {
			return nil, fmt.Errorf("получение задачи: %w", err)
		}
		logger.Info("Service: Задача не найдена", zap.String("target_id", taskID.String()))
		return nil, NewNotFound(msgTaskNotFound)
	}

	board, err := s.boards.GetBoardByID(ctx, task.BoardID)
	if err != nil {
		if !errors.Is(err, rep.ErrNotFound) {
			return nil, fmt.Errorf("получение доски задачи: %w", err)
		}
		board = nil
	}

	if err := CheckTaskOwnership(task, board, userID); err != nil {
		return nil, err
	}
	return task, nil
}
