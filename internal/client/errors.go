package client

import (
	"errors"
	"fmt"
	"net/http"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/workflow"
)

// ErrConfirmationDeclined возвращается, если пользователь не подтвердил необратимое действие.
var ErrConfirmationDeclined = errors.New("confirmation declined")

// APIError: ошибка сети или сервиса. Содержит статус, код и ошибки по полям из ответа.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string][]string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is сопоставляет коды ответа с доменными ошибками, чтобы работали errors.Is(err, workflow.ErrInvalidTransition) и т.п.
func (e *APIError) Is(target error) bool {
	switch target {
	case workflow.ErrInvalidTransition:
		return e.Code == "INVALID_TRANSITION"
	case assignment.ErrInvalidAssignment:
		return e.Code == "INVALID_ASSIGNMENT"
	}
	return false
}

// IsRetryable сообщает, имеет ли смысл повторить запрос: сетевая ошибка или 5xx.
func (e *APIError) IsRetryable() bool {
	return e.Err != nil || e.StatusCode >= http.StatusInternalServerError
}

// IsNotFound сообщает, что ресурс не найден.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// FieldErrors возвращает ошибки по полям из ответа сервиса или локальной проверки.
func FieldErrors(err error) map[string][]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Fields
	}
	var assignErr *assignment.InvalidAssignmentError
	if errors.As(err, &assignErr) {
		return map[string][]string{assignErr.Field: {assignErr.Message}}
	}
	var transErr *workflow.InvalidTransitionError
	if errors.As(err, &transErr) {
		return map[string][]string{"status": {transErr.Error()}}
	}
	return nil
}
