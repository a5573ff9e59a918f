// Package tui implements the interactive habit list on top of the
// habit service. It renders the service's observable state and emits
// user intents back into it; no business logic lives here.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/rutina/internal/models"
	habitservice "github.com/thenoetrevino/rutina/internal/services/habit"
)

// Mode identifies which input handler owns the next key press.
type Mode int

const (
	NormalMode Mode = iota
	SearchMode
	AddMode
	EditMode
	DetailMode
	ConfirmDeleteMode
)

// HabitFormModel backs the huh add/edit form fields.
type HabitFormModel struct {
	Title       string
	Description string
}

// Model represents the application state for the TUI
type Model struct {
	svc habitservice.Service

	mode   Mode
	cursor int

	search    textinput.Model
	form      *huh.Form
	habitForm *HabitFormModel
	editingID int // 0 while adding

	deleteTarget *models.Habit
	detailTarget *models.Habit

	status string // transient one-line feedback (import results, errors)

	keys   KeyMap
	help   help.Model
	width  int
	height int
}

// InitialModel creates the TUI model and loads the initial habit list.
func InitialModel(svc habitservice.Service) Model {
	search := textinput.New()
	search.Placeholder = "search habits..."
	search.Prompt = "/ "
	search.CharLimit = 80

	svc.Refresh(context.Background())

	return Model{
		svc:    svc,
		mode:   NormalMode,
		search: search,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init is required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// dbContext returns the context used for service calls issued from the
// event loop.
func (m Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// visibleHabits returns the service's derived filtered view.
func (m Model) visibleHabits() []*models.Habit {
	return m.svc.VisibleHabits()
}

// currentHabit returns the habit under the cursor, or nil.
func (m Model) currentHabit() *models.Habit {
	habits := m.visibleHabits()
	if len(habits) == 0 || m.cursor >= len(habits) {
		return nil
	}
	return habits[m.cursor]
}

// clampCursor keeps the cursor inside the visible list after the
// working set or the filter changed.
func (m *Model) clampCursor() {
	n := len(m.visibleHabits())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}
