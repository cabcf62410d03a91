package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError - ошибка клиентской проверки формы. Возникает до
// обращения к сети и несет готовое сообщение для пользователя.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создает ошибку валидации с сообщением для пользователя
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// AuthError - отказ сервера при обмене логина и пароля на токены.
// Детали сервера наружу не выносятся, пользователь видит общее сообщение.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login rejected: status %d", e.StatusCode)
}

// RequestError - любая другая неуспешная операция: не-2xx ответ или
// сетевой сбой. StatusCode равен 0, если ответа не было вовсе.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed: status %d", e.StatusCode)
}

// IsUnauthorized сообщает, был ли это ответ 401. Единственная ветка,
// где клиент различает подтипы ошибок, - переключение статуса задания.
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized проверяет, что err - это RequestError со статусом 401
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.IsUnauthorized()
}

// ServerMessage достает из ошибки сообщение сервера, если оно было в ответе
func ServerMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return ""
}
