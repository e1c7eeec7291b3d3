package service

import (
	"fmt"
	"net/http"
)

// AppError описывает ошибку HTTP-уровня:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
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

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrMethodNotAllowed конструирует AppError для запроса с неподдерживаемым методом.
func ErrMethodNotAllowed(msg string) *AppError {
	return &AppError{
		Code:    "METHOD_NOT_ALLOWED",
		Message: msg,
		Status:  http.StatusMethodNotAllowed,
	}
}

// ErrInternal оборачивает внутреннюю ошибку (например, ошибку шаблона) в AppError со статусом 500.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
