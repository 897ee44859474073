package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientStock indicates that a sale would take a product's stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrExcessPayment indicates that a payment exceeds the remaining amount of a transaction.
var ErrExcessPayment = errors.New("payment exceeds remaining amount")

// ErrAlreadySettled indicates that a payment was attempted on a fully paid transaction.
var ErrAlreadySettled = errors.New("transaction already settled")

// ErrDuplicateSequence indicates that a concurrently allocated document number collided
// with an existing one. The caller should retry the whole creation.
var ErrDuplicateSequence = errors.New("duplicate sequence number")

// ErrInternal indicates an unexpected internal failure (storage unavailable, etc.).
var ErrInternal = errors.New("internal error")

// AppError carries a status code alongside a message and a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
