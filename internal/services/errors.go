package services

import (
	"errors"
	"fmt"

	"stable_backend/internal/repositories"
)

// Error categories. Every error a service returns wraps exactly one of these,
// which is what handlers use to pick a status code.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage error")
)

var (
	ErrHorseNotFound        = fmt.Errorf("%w: horse", ErrNotFound)
	ErrRecordNotFound       = fmt.Errorf("%w: horse record", ErrNotFound)
	ErrTrainerNotFound      = fmt.Errorf("%w: trainer", ErrNotFound)
	ErrLessonNotFound       = fmt.Errorf("%w: lesson", ErrNotFound)
	ErrCustomFieldNotFound  = fmt.Errorf("%w: custom field", ErrNotFound)
	ErrCustomFieldKeyExists = fmt.Errorf("%w: a custom field with this key already exists", ErrConflict)
	ErrLessonNotScheduled   = fmt.Errorf("%w: only scheduled lessons can change status", ErrConflict)
	ErrInvalidPassword      = errors.New("invalid password")
	ErrInvalidSession       = errors.New("invalid or expired session")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// storageError maps a repository error onto the service taxonomy. notFound is
// returned for repositories.ErrNotFound.
func storageError(err, notFound error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, repositories.ErrDuplicateKey), errors.Is(err, repositories.ErrReferenceViolation):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
}
