package models

import "time"

// опции применяются хранилищем поверх текущей записи при обновлении
type BoardOption func(*Board)

func WithBoardTitle(title string) BoardOption {
	return func(board *Board) {
		board.Title = title
	}
}

type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	return func(task *Task) {
		task.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = description
	}
}

func WithStatus(status Status) TaskOption {
	return func(task *Task) {
		task.Status = status
	}
}

// nil очищает срок выполнения
func WithDueDate(dueDate *time.Time) TaskOption {
	return func(task *Task) {
		if dueDate == nil {
			task.DueDate = nil
			return
		}
		d := *dueDate
		task.DueDate = &d
	}
}
