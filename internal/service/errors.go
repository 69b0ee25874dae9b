package service

import (
	"errors"
	"fmt"
)

// коды ошибок бизнес-логики, по ним обработчики выбирают HTTP статус
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeBoardNotFound   = "BOARD_NOT_FOUND"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}

	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}

	return busErr
}

func NewNotFound(message string, details ...Detail) *BusinessError {
	return NewBusinessError(CodeNotFound, message, details...)
}

func NewValidationError(field, message string) *BusinessError {
	return NewBusinessError(CodeValidation, message, ToDetail("field", field))
}

func NewForbidden(message string) *BusinessError {
	return NewBusinessError(CodeForbidden, message)
}

func NewUnauthenticated(message string, err error) *BusinessError {
	busErr := NewBusinessError(CodeUnauthenticated, message)
	busErr.Err = err
	return busErr
}

// HasCode сообщает, является ли err бизнес-ошибкой с данным кодом.
func HasCode(err error, code string) bool {
	var busErr *BusinessError
	return errors.As(err, &busErr) && busErr.Code == code
}
