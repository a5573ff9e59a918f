package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current mode.
func (m Model) View() string {
	switch m.mode {
	case AddMode, EditMode:
		return m.viewForm()
	case DetailMode:
		return m.viewDetail()
	case ConfirmDeleteMode:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Rutina — Habits"))
	b.WriteString("\n\n")

	if m.mode == SearchMode || m.svc.SearchText() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.svc.Loading():
		b.WriteString(dimStyle.Render("Loading habits..."))
		b.WriteString("\n")
	case len(m.visibleHabits()) == 0 && m.svc.SearchText() != "":
		b.WriteString(dimStyle.Render("No habits match the search"))
		b.WriteString("\n")
	case len(m.visibleHabits()) == 0:
		b.WriteString(dimStyle.Render("No habits yet — press 'a' to add one"))
		b.WriteString("\n")
	default:
		for i, h := range m.visibleHabits() {
			mark := "[ ]"
			if h.DoneToday {
				mark = doneStyle.Render("[x]")
			}

			line := fmt.Sprintf("%s %s", mark, h.Title)
			if i == m.cursor && m.mode == NormalMode {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.svc.Importing() {
		b.WriteString(statusStyle.Render("Importing habits from feed..."))
		b.WriteString("\n")
	} else if m.svc.ImportError() != "" {
		b.WriteString(errorStyle.Render(m.svc.ImportError()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) viewForm() string {
	header := "Add habit"
	if m.mode == EditMode {
		header = "Edit habit"
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(header),
		m.form.View(),
	)
}

// viewDetail shows the selected habit with its description rendered as
// markdown.
func (m Model) viewDetail() string {
	if m.detailTarget == nil {
		return ""
	}

	description := m.detailTarget.Description
	if description == "" {
		description = dimStyle.Render("(no description)")
	} else if rendered, err := glamour.Render(description, "dark"); err == nil {
		description = strings.TrimSpace(rendered)
	}

	done := "not done today"
	if m.detailTarget.DoneToday {
		done = doneStyle.Render("done today")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(m.detailTarget.Title),
		"",
		description,
		"",
		dimStyle.Render(fmt.Sprintf("#%d · %s", m.detailTarget.ID, done)),
		"",
		dimStyle.Render("esc to close"),
	)

	return detailBoxStyle.Render(content)
}

func (m Model) viewConfirmDelete() string {
	if m.deleteTarget == nil {
		return ""
	}
	return confirmStyle.Render(fmt.Sprintf(
		"Delete habit %q?\n\ny: delete    n: cancel",
		m.deleteTarget.Title,
	))
}
