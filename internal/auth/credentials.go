// Package auth выпускает и проверяет сессионные токены и хеши паролей.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenTTL    = 7 * 24 * time.Hour
	DefaultCost = 12

	issuer = "taskboard"

	// bcrypt учитывает только первые 72 байта пароля
	maxPasswordBytes = 72
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type Credentials struct {
	secret []byte
	cost   int
	now    func() time.Time
}

type Option func(*Credentials)

// WithCost задаёт стоимость bcrypt для всех вызовов Hash этого сервиса.
func WithCost(cost int) Option {
	return func(c *Credentials) {
		c.cost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Credentials) {
		c.now = now
	}
}

func NewCredentials(secret string, options ...Option) (*Credentials, error) {
	if secret == "" {
		return nil, errors.New("auth: пустой секрет подписи токенов")
	}

	c := &Credentials{
		secret: []byte(secret),
		cost:   DefaultCost,
		now:    time.Now,
	}
	for _, opt := range options {
		opt(c)
	}

	if c.cost < bcrypt.MinCost || c.cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("auth: недопустимая стоимость bcrypt %d", c.cost)
	}
	return c, nil
}

func (c *Credentials) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("хеширование пароля: %w", err)
	}
	return string(hash), nil
}

func (c *Credentials) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func (c *Credentials) IssueToken(principalID uuid.UUID) (string, error) {
	now := c.now()
	claims := Claims{
		UserID: principalID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("подпись токена: %w", err)
	}
	return signed, nil
}

// VerifyToken возвращает идентификатор пользователя из токена.
// Любая ошибка подписи, формата или срока действия приводит к ErrInvalidToken.
func (c *Credentials) VerifyToken(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return id, nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
