package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/rutina/internal/models"
)

// ============================================================================
// Habit Operations
// ============================================================================

// The 0/1 integer representation of the active and done_today columns is
// confined to this file: rows are coerced through scanHabit on every read
// and through boolToInt on every write, so no caller ever sees raw ints.

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// scanHabit maps one row onto a Habit, coercing stored integers to bools.
// description is nullable in the schema and collapses to "".
func scanHabit(rows *sql.Rows) (*models.Habit, error) {
	habit := &models.Habit{}
	var description sql.NullString
	var active, doneToday int

	if err := rows.Scan(
		&habit.ID, &habit.Title, &description,
		&active, &doneToday, &habit.CreatedAt,
	); err != nil {
		return nil, err
	}

	habit.Description = description.String
	habit.Active = active == 1
	habit.DoneToday = doneToday == 1

	return habit, nil
}

// ListActiveHabits retrieves all habits with active = 1, newest first.
func ListActiveHabits(ctx context.Context, db *sql.DB) ([]*models.Habit, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, description, active, done_today, created_at
		 FROM habits
		 WHERE active = 1
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []*models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return habits, nil
}

// InsertHabit creates a new habit. The caller is responsible for title
// validation; the store assigns created_at and the active/done_today
// defaults.
func InsertHabit(ctx context.Context, db *sql.DB, title, description string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO habits (title, description, active, done_today, created_at)
		 VALUES (?, ?, 1, 0, ?)`,
		title, description, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

// UpdateHabit rewrites title and description only. A non-existent id is
// a silent no-op: active, done_today and created_at are never touched.
func UpdateHabit(ctx context.Context, db *sql.DB, id int, title, description string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE habits
		 SET title = ?, description = ?
		 WHERE id = ?`,
		title, description, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	return nil
}

// DeleteHabit physically removes the habit row. No error on unknown id.
func DeleteHabit(ctx context.Context, db *sql.DB, id int) error {
	_, err := db.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}

// ToggleHabitDoneToday sets done_today to the negation of the
// caller-supplied current status. The store trusts the caller's view of
// current state rather than re-reading it, so back-to-back toggles that
// both read the same status are last-write-wins.
func ToggleHabitDoneToday(ctx context.Context, db *sql.DB, id int, currentStatus bool) error {
	_, err := db.ExecContext(ctx,
		"UPDATE habits SET done_today = ? WHERE id = ?",
		boolToInt(!currentStatus), id,
	)
	if err != nil {
		return fmt.Errorf("failed to toggle habit: %w", err)
	}
	return nil
}

// BulkImportHabits merges externally-sourced candidates into the store,
// skipping any whose lower-cased title already exists. The membership
// set covers every row regardless of active status and grows as the
// batch proceeds, so a duplicate within the batch itself is rejected
// too. Surviving candidates get done_today = 0 and a created_at that
// increases by one millisecond per insert, anchored to the batch start,
// to keep a stable relative order among same-batch imports.
//
// The membership read and the inserts are not wrapped in a transaction;
// an insert racing with a concurrent single-habit create can still
// produce a duplicate title, and a mid-batch failure leaves earlier
// inserts in place.
func BulkImportHabits(ctx context.Context, db *sql.DB, candidates []models.HabitCandidate) (models.ImportResult, error) {
	existing, err := existingTitleSet(ctx, db)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("failed to read existing titles: %w", err)
	}

	batchStart := time.Now().UnixMilli()
	inserted := 0

	for _, c := range candidates {
		key := strings.ToLower(c.Title)
		if _, ok := existing[key]; ok {
			continue
		}

		_, err := db.ExecContext(ctx,
			`INSERT INTO habits (title, description, active, done_today, created_at)
			 VALUES (?, ?, ?, 0, ?)`,
			c.Title, c.Description, boolToInt(c.Active), batchStart+int64(inserted),
		)
		if err != nil {
			return models.ImportResult{}, fmt.Errorf("failed to import habit %q: %w", c.Title, err)
		}

		existing[key] = struct{}{}
		inserted++
	}

	return models.ImportResult{Inserted: inserted}, nil
}

// existingTitleSet returns the lower-cased titles of every habit row,
// including inactive ones, for case-insensitive duplicate detection.
func existingTitleSet(ctx context.Context, db *sql.DB) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, "SELECT title FROM habits")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make(map[string]struct{})
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles[strings.ToLower(title)] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return titles, nil
}
