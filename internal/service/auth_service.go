package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"taskBoard/internal/auth"
	"taskBoard/internal/logger"
	"taskBoard/internal/models"
	rep "taskBoard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgInvalidEmail        = "Please provide a valid email address"
	msgWeakPassword        = "Password must be at least 6 characters long"
	msgDuplicateEmail      = "User with this email already exists"
	msgInvalidCredentials  = "Invalid email or password"
	msgInvalidToken        = "Invalid token."
	msgUserNotFound        = "Invalid token. User not found."
)

type AuthService struct {
	users UserRepository
	creds Credentials
}

func NewAuthService(users UserRepository, creds Credentials) *AuthService {
	return &AuthService{
		users: users,
		creds: creds,
	}
}

// Register создаёт пользователя и сразу выдаёт ему сессионный токен.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", NewValidationError("email", msgCredentialsRequired)
	}
	if !auth.ValidEmail(email) {
		return nil, "", NewValidationError("email", msgInvalidEmail)
	}
	if !auth.ValidPassword(password) {
		return nil, "", NewValidationError("password", msgWeakPassword)
	}

	email = strings.ToLower(email)

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, "", NewValidationError("email", msgDuplicateEmail)
	}
	if !errors.Is(err, rep.ErrNotFound) {
		return nil, "", fmt.Errorf("поиск пользователя: %w", err)
	}

	hash, err := s.creds.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, rep.ErrAlreadyExists) {
			return nil, "", NewValidationError("email", msgDuplicateEmail)
		}
		return nil, "", fmt.Errorf("создание пользователя: %w", err)
	}

	token, err := s.creds.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Info("Service: Пользователь зарегистрирован", zap.String("user_id", user.ID.String()))
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", NewValidationError("email", msgCredentialsRequired)
	}
	if !auth.ValidEmail(email) {
		return nil, "", NewValidationError("email", msgInvalidEmail)
	}

	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, "", NewUnauthenticated(msgInvalidCredentials, nil)
		}
		return nil, "", fmt.Errorf("поиск пользователя: %w", err)
	}

	if !s.creds.Verify(password, user.PasswordHash) {
		logger.Info("Service: Неверный пароль", zap.String("user_id", user.ID.String()))
		return nil, "", NewUnauthenticated(msgInvalidCredentials, nil)
	}

	token, err := s.creds.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate проверяет токен и находит его владельца.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Principal, error) {
	id, err := s.creds.VerifyToken(token)
	if err != nil {
		return nil, NewUnauthenticated(msgInvalidToken, err)
	}

	user, err := s.CurrentUser(ctx, id)
	if err != nil {
		return nil, err
	}

	principal := user.Principal()
	return &principal, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Пользователь из токена не найден", zap.String("user_id", id.String()))
			return nil, NewUnauthenticated(msgUserNotFound, err)
		}
		return nil, fmt.Errorf("получение пользователя: %w", err)
	}
	return user, nil
}
