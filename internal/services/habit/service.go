// Package habit implements the view-model for the habit list: it owns
// the in-memory working set, sequences store calls in response to user
// intents, and derives the search-filtered view the presentation layer
// renders.
package habit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/rutina/internal/database"
	"github.com/thenoetrevino/rutina/internal/models"
)

// Feed fetches habit candidates from the remote source.
type Feed interface {
	Fetch(ctx context.Context) ([]models.HabitCandidate, error)
}

// Service defines all habit-related business operations plus the
// observable state the presentation layer renders.
type Service interface {
	// User intents
	Refresh(ctx context.Context)
	Create(ctx context.Context, title, description string) error
	Edit(ctx context.Context, id int, title, description string) error
	Toggle(ctx context.Context, id int) error
	Remove(ctx context.Context, id int) error
	ImportFromFeed(ctx context.Context) (int, error)
	SetSearchText(text string)

	// Observable state
	Habits() []*models.Habit
	VisibleHabits() []*models.Habit
	Loading() bool
	Importing() bool
	ImportError() string
	SearchText() string
}

// service implements Service. All state is guarded by mu: the TUI runs
// operations from bubbletea commands on separate goroutines, and the
// mutex serializes state mutation without attempting to fix the
// read-then-write races the store layer documents.
type service struct {
	store database.HabitStore
	feed  Feed

	mu          sync.Mutex
	habits      []*models.Habit
	loading     bool
	importing   bool
	importError string
	searchText  string
}

// NewService creates a new habit service.
func NewService(store database.HabitStore, feed Feed) Service {
	return &service{
		store: store,
		feed:  feed,
	}
}

// Refresh replaces the working set with the store's active habits.
// A read failure degrades to an empty list rather than an error;
// loading is cleared on every exit path.
func (s *service) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	habits, err := s.store.ListActive(ctx)
	if err != nil {
		slog.Error("Failed to fetch habits", "error", err)
		habits = nil
	}

	s.mu.Lock()
	s.habits = habits
	s.loading = false
	s.mu.Unlock()
}

// Create validates and trims the title, inserts the habit, and
// refreshes. No store call is made for an empty title.
func (s *service) Create(ctx context.Context, title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	if err := s.store.Insert(ctx, title, description); err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	s.Refresh(ctx)
	return nil
}

// Edit rewrites title and description under the same trim/validate
// contract as Create.
func (s *service) Edit(ctx context.Context, id int, title, description string) error {
	if id <= 0 {
		return ErrInvalidHabitID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	if err := s.store.Update(ctx, id, title, description); err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	s.Refresh(ctx)
	return nil
}

// Toggle flips done_today based on the habit's status in local state.
// Two toggles issued before either refresh completes both read the same
// status; the last write wins.
func (s *service) Toggle(ctx context.Context, id int) error {
	s.mu.Lock()
	var current *models.Habit
	for _, h := range s.habits {
		if h.ID == id {
			current = h
			break
		}
	}
	s.mu.Unlock()

	if current == nil {
		return ErrHabitNotFound
	}

	if err := s.store.ToggleDoneToday(ctx, id, current.DoneToday); err != nil {
		return fmt.Errorf("failed to toggle habit: %w", err)
	}

	s.Refresh(ctx)
	return nil
}

// Remove deletes the habit and refreshes. Confirmation is the
// presentation layer's job; none happens here.
func (s *service) Remove(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidHabitID
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	s.Refresh(ctx)
	return nil
}

// ImportFromFeed fetches the remote feed, merges the candidates into
// the store, and reports how many were inserted. Any failure sets the
// importError surface and leaves the working set untouched; the
// importing flag is cleared on every exit path.
func (s *service) ImportFromFeed(ctx context.Context) (inserted int, err error) {
	s.mu.Lock()
	s.importing = true
	s.importError = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.importing = false
		if err != nil {
			s.importError = fmt.Sprintf("Could not import habits: %v", err)
		}
		s.mu.Unlock()
	}()

	candidates, err := s.feed.Fetch(ctx)
	if err != nil {
		slog.Error("Feed fetch failed", "error", err)
		return 0, err
	}

	result, err := s.store.BulkImport(ctx, candidates)
	if err != nil {
		slog.Error("Bulk import failed", "error", err)
		return 0, err
	}

	s.Refresh(ctx)
	return result.Inserted, nil
}

// SetSearchText updates the search filter applied by VisibleHabits.
func (s *service) SetSearchText(text string) {
	s.mu.Lock()
	s.searchText = text
	s.mu.Unlock()
}

// Habits returns the unfiltered working set.
func (s *service) Habits() []*models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.habits
}

// VisibleHabits derives the filtered view: habits whose title contains
// the search text, case-insensitively, in their original order. Empty
// search text yields the whole working set.
func (s *service) VisibleHabits() []*models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searchText == "" {
		return s.habits
	}

	query := strings.ToLower(s.searchText)
	var visible []*models.Habit
	for _, h := range s.habits {
		if strings.Contains(strings.ToLower(h.Title), query) {
			visible = append(visible, h)
		}
	}
	return visible
}

func (s *service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *service) Importing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.importing
}

func (s *service) ImportError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.importError
}

func (s *service) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchText
}
