package models

import (
	"time"

	"github.com/google/uuid"
)

type Board struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// BoardSummary - сокращённое представление доски в списке задач
type BoardSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Board) Summary() BoardSummary {
	return BoardSummary{ID: b.ID, Title: b.Title, CreatedAt: b.CreatedAt}
}

const (
	BoardTitleMaxLen = 100
)
