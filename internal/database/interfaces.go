// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/rutina/internal/models"
)

// HabitStore defines the data operations the service layer depends on.
// Keeping this an interface lets tests substitute a failing store
// without touching SQLite.
type HabitStore interface {
	ListActive(ctx context.Context) ([]*models.Habit, error)
	Insert(ctx context.Context, title, description string) error
	Update(ctx context.Context, id int, title, description string) error
	Delete(ctx context.Context, id int) error
	ToggleDoneToday(ctx context.Context, id int, currentStatus bool) error
	BulkImport(ctx context.Context, candidates []models.HabitCandidate) (models.ImportResult, error)
}
