package inmemory

import (
	"context"
	"taskBoard/internal/models"
	repo "taskBoard/internal/repository"
	"time"

	"github.com/google/uuid"
)

// CreateUser проверяет уникальность email и создаёт пользователя в одной критической секции.
func (s *Storage) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.findUserByEmail(email) != nil {
		return nil, repo.ErrAlreadyExists
	}

	user := &models.User{
		ID:           s.nextID(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[user.ID] = user
	s.userIDs = append(s.userIDs, user.ID)

	cp := *user
	return &cp, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	user := s.findUserByEmail(email)
	if user == nil {
		return nil, repo.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

// линейный поиск, вызывается под мьютексом
func (s *Storage) findUserByEmail(email string) *models.User {
	for _, id := range s.userIDs {
		if user := s.users[id]; user.Email == email {
			return user
		}
	}
	return nil
}
