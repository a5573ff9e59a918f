package models

// Habit represents a single tracked habit
type Habit struct {
	ID          int
	Title       string
	Description string
	Active      bool
	DoneToday   bool
	CreatedAt   int64 // epoch milliseconds, assigned once at insert
}

// HabitCandidate is the shape of an externally-sourced habit record
// before it has been merged into the local store
type HabitCandidate struct {
	Title       string
	Description string
	Active      bool
}

// ImportResult reports the outcome of a bulk import
type ImportResult struct {
	Inserted int
}
