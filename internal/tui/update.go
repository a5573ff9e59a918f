package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// importDoneMsg carries the result of an asynchronous feed import back
// into the event loop.
type importDoneMsg struct {
	inserted int
	err      error
}

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case importDoneMsg:
		if msg.err != nil {
			m.status = m.svc.ImportError()
		} else {
			m.status = fmt.Sprintf("Imported %d new habits from feed", msg.inserted)
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case SearchMode:
			return m.handleSearchMode(msg)
		case AddMode, EditMode:
			return m.handleFormMode(msg)
		case DetailMode:
			return m.handleDetailMode(msg)
		case ConfirmDeleteMode:
			return m.handleDeleteConfirm(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}

// handleNormalMode handles keyboard input in the list view.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleHabits())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		habit := m.currentHabit()
		if habit == nil {
			return m, nil
		}
		ctx, cancel := m.dbContext()
		defer cancel()
		if err := m.svc.Toggle(ctx, habit.ID); err != nil {
			m.status = fmt.Sprintf("Could not toggle habit: %v", err)
		}
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{}
		m.editingID = 0
		m.form = newHabitForm(m.habitForm)
		m.mode = AddMode
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		habit := m.currentHabit()
		if habit == nil {
			return m, nil
		}
		m.habitForm = &HabitFormModel{
			Title:       habit.Title,
			Description: habit.Description,
		}
		m.editingID = habit.ID
		m.form = newHabitForm(m.habitForm)
		m.mode = EditMode
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		habit := m.currentHabit()
		if habit == nil {
			return m, nil
		}
		m.deleteTarget = habit
		m.mode = ConfirmDeleteMode
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		habit := m.currentHabit()
		if habit == nil {
			return m, nil
		}
		m.detailTarget = habit
		m.mode = DetailMode
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.search.SetValue(m.svc.SearchText())
		m.search.Focus()
		m.mode = SearchMode
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Import):
		if m.svc.Importing() {
			return m, nil
		}
		m.status = "Importing habits from feed..."
		return m, m.importCmd()

	case key.Matches(msg, m.keys.Refresh):
		ctx, cancel := m.dbContext()
		defer cancel()
		m.svc.Refresh(ctx)
		m.status = ""
		m.clampCursor()
		return m, nil
	}

	return m, nil
}

// handleSearchMode filters the list as the user types.
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.mode = NormalMode
		return m, nil
	case "esc":
		m.search.SetValue("")
		m.svc.SetSearchText("")
		m.search.Blur()
		m.mode = NormalMode
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.svc.SetSearchText(m.search.Value())
	m.cursor = 0
	return m, cmd
}

// handleFormMode forwards input to the huh form and submits on completion.
func (m Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = NormalMode
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		ctx, cancel := m.dbContext()
		defer cancel()

		var err error
		if m.mode == AddMode {
			err = m.svc.Create(ctx, m.habitForm.Title, m.habitForm.Description)
		} else {
			err = m.svc.Edit(ctx, m.editingID, m.habitForm.Title, m.habitForm.Description)
		}
		if err != nil {
			m.status = fmt.Sprintf("Could not save habit: %v", err)
		} else {
			m.status = ""
		}

		m.mode = NormalMode
		m.form = nil
		m.clampCursor()
		return m, nil

	case huh.StateAborted:
		m.mode = NormalMode
		m.form = nil
		return m, nil
	}

	return m, cmd
}

// handleDetailMode dismisses the detail overlay on any close key.
func (m Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "v", "enter":
		m.detailTarget = nil
		m.mode = NormalMode
	}
	return m, nil
}

// handleDeleteConfirm handles the y/n prompt for deletion.
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		ctx, cancel := m.dbContext()
		defer cancel()
		if err := m.svc.Remove(ctx, m.deleteTarget.ID); err != nil {
			m.status = fmt.Sprintf("Could not delete habit: %v", err)
		} else {
			m.status = fmt.Sprintf("Deleted %q", m.deleteTarget.Title)
		}
		m.deleteTarget = nil
		m.mode = NormalMode
		m.clampCursor()
		return m, nil
	case "n", "N", "esc":
		m.deleteTarget = nil
		m.mode = NormalMode
		return m, nil
	}
	return m, nil
}

// importCmd runs the feed import off the event loop. The service
// serializes its own state, so the command only reports the outcome.
func (m Model) importCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		inserted, err := svc.ImportFromFeed(ctx)
		return importDoneMsg{inserted: inserted, err: err}
	}
}
