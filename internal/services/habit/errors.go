package habit

import "errors"

// Habit-related errors
var (
	// Validation errors
	ErrEmptyTitle     = errors.New("habit title cannot be empty")
	ErrInvalidHabitID = errors.New("invalid habit ID")

	// Business logic errors
	ErrHabitNotFound = errors.New("habit not found")
)
