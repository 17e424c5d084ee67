package service

import (
	"errors"
	"fmt"
	"net/http"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/workflow"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус, ошибки по полям и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Fields  map[string][]string
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrValidation конструирует AppError с ошибками по полям.
func ErrValidation(fields map[string][]string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "validation failed",
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

// ErrField: ошибка валидации одного поля.
func ErrField(field, msg string) *AppError {
	return ErrValidation(map[string][]string{field: {msg}})
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов (TEAM_EXISTS, EQUIPMENT_IN_USE и т.п.).
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	if code == "CONFIRMATION_REQUIRED" {
		status = http.StatusBadRequest
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

func errInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// errTransition переводит ошибку workflow в AppError INVALID_TRANSITION.
func errTransition(err error) *AppError {
	return &AppError{
		Code:    "INVALID_TRANSITION",
		Message: err.Error(),
		Status:  http.StatusConflict,
		Fields:  map[string][]string{"status": {err.Error()}},
		Err:     err,
	}
}

// errAssignment переводит ошибку назначения в AppError INVALID_ASSIGNMENT с указанием поля.
func errAssignment(err *assignment.InvalidAssignmentError) *AppError {
	return &AppError{
		Code:    "INVALID_ASSIGNMENT",
		Message: err.Error(),
		Status:  http.StatusBadRequest,
		Fields:  map[string][]string{err.Field: {err.Message}},
		Err:     err,
	}
}

// fromDomainErr переводит ошибки workflow и assignment в AppError; прочие возвращает как есть.
func fromDomainErr(err error) error {
	var assignErr *assignment.InvalidAssignmentError
	if errors.As(err, &assignErr) {
		return errAssignment(assignErr)
	}
	if errors.Is(err, workflow.ErrInvalidTransition) {
		return errTransition(err)
	}
	return err
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status == http.StatusNotFound
	}
	return false
}

// AsAppError возвращает AppError из цепочки ошибок или оборачивает её как внутреннюю.
func AsAppError(err error) *AppError {
	var app *AppError
	if errors.As(err, &app) {
		return app
	}
	return errInternal("internal error", err)
}
