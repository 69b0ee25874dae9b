package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal - аутентифицированный пользователь текущего запроса
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Email: u.Email}
}
