package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrTaskNotFound    = errors.New("task not found")
	ErrHistoryConflict = errors.New("history entry already exists")
	ErrStorage         = errors.New("storage failure")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError wraps a persistence failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func NewTaskNotFoundError(id string) error {
	return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

func NewHistoryConflictError(date string) error {
	return fmt.Errorf("%w: %s", ErrHistoryConflict, date)
}
