package service

import (
	"errors"
	"fmt"

	"waltgoat/walker-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrNoActivePlan        = errors.New("no active plan")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrWalkNotFound        = errors.New("walk not found")
	ErrValidationFailed    = errors.New("validation failed")
	ErrUpstreamUnavailable = errors.New("upstream store unavailable")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, fmt.Sprintf(format, args...))
}

// storeError maps a repository failure. NotFound becomes notFound, anything
// else is reported as an unavailable store.
func storeError(err, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}
