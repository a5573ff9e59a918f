package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/rutina/internal/models"
)

// Repository wraps a database connection and satisfies HabitStore by
// delegating to the package-level operations. The connection is an
// explicit constructor-bound dependency; there is no ambient lookup.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given
// database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListActive(ctx context.Context) ([]*models.Habit, error) {
	return ListActiveHabits(ctx, r.db)
}

func (r *Repository) Insert(ctx context.Context, title, description string) error {
	return InsertHabit(ctx, r.db, title, description)
}

func (r *Repository) Update(ctx context.Context, id int, title, description string) error {
	return UpdateHabit(ctx, r.db, id, title, description)
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	return DeleteHabit(ctx, r.db, id)
}

func (r *Repository) ToggleDoneToday(ctx context.Context, id int, currentStatus bool) error {
	return ToggleHabitDoneToday(ctx, r.db, id, currentStatus)
}

func (r *Repository) BulkImport(ctx context.Context, candidates []models.HabitCandidate) (models.ImportResult, error) {
	return BulkImportHabits(ctx, r.db, candidates)
}
