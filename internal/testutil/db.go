// Package testutil provides shared fixtures for database-backed tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the habits schema.
// It is intentionally unseeded so tests start from a known-empty table.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	schema := `
	CREATE TABLE IF NOT EXISTS habits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		active INTEGER DEFAULT 1,
		done_today INTEGER DEFAULT 0,
		created_at INTEGER
	);
	`
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestHabit inserts a habit row and returns its ID.
func CreateTestHabit(t *testing.T, db *sql.DB, title string, createdAt int64) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO habits (title, description, active, done_today, created_at)
		 VALUES (?, '', 1, 0, ?)`,
		title, createdAt,
	)
	if err != nil {
		t.Fatalf("Failed to create test habit: %v", err)
	}

	id, _ := result.LastInsertId()
	return int(id)
}

// CountHabits returns the total row count, including inactive habits.
func CountHabits(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM habits").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count habits: %v", err)
	}
	return count
}
