package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

// runMigrations creates the database schema and seeds sample data if needed.
// A schema failure propagates; a seeding failure is logged and swallowed so
// an empty but working table never blocks startup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS habits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			active INTEGER DEFAULT 1,
			done_today INTEGER DEFAULT 0,
			created_at INTEGER
		)
	`)
	if err != nil {
		return err
	}

	if err := seedSampleHabits(ctx, db); err != nil {
		slog.Error("Failed to seed sample habits", "error", err)
	}

	return nil
}

// seedSampleHabits inserts the starter habits if the table is empty.
// Each row gets a strictly increasing created_at so the default
// newest-first ordering is deterministic.
func seedSampleHabits(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(id) FROM habits").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	slog.Info("Seeding sample habits data")

	now := time.Now().UnixMilli()
	samples := []struct {
		title       string
		description string
	}{
		{"Uống 2 lít nước", "Uống đủ 2 lít nước mỗi ngày để giữ cơ thể khỏe mạnh"},
		{"Đi bộ 15 phút", "Đi bộ nhanh 15 phút mỗi ngày"},
		{"Đọc sách 30 phút", "Dành 30 phút đọc sách trước khi ngủ"},
	}

	for i, s := range samples {
		_, err := db.ExecContext(ctx,
			`INSERT INTO habits (title, description, active, done_today, created_at)
			 VALUES (?, ?, 1, 0, ?)`,
			s.title, s.description, now+int64(i),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
