package dto

import (
	"taskBoard/internal/models"
	"taskBoard/internal/service"
	"time"

	"github.com/google/uuid"
)

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type BoardRequest struct {
	Title string `json:"title"`
}

type CreateTaskRequest struct {
	BoardID     string  `json:"boardId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskRequest различает отсутствующие поля и явный null
type UpdateTaskRequest struct {
	Title       models.Optional[string] `json:"title"`
	Description models.Optional[string] `json:"description"`
	Status      models.Optional[string] `json:"status"`
	DueDate     models.Optional[string] `json:"dueDate"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (r CreateTaskRequest) ToInput() service.CreateTaskInput {
	return service.CreateTaskInput{
		BoardID:     r.BoardID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
}

func (r UpdateTaskRequest) ToInput() service.UpdateTaskInput {
	return service.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}
