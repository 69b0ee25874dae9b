package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `json:"id"`
	BoardID     uuid.UUID  `json:"boardId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type Status string

const StatusPending Status = "pending"
const StatusCompleted Status = "completed"

// StatusInProgress отображается интерфейсом, но API его не принимает и не выдаёт
const StatusInProgress Status = "in-progress"

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

const (
	TaskTitleMaxLen       = 200
	TaskDescriptionMaxLen = 1000
)
