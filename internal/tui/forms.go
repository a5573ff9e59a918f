package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrTitleRequired is surfaced inline by the form before submission.
var ErrTitleRequired = errors.New("title cannot be empty")

// newHabitForm builds the add/edit form. The empty-title rule mirrors
// the service's validation so the user sees it before submitting.
func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return ErrTitleRequired
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(&fm.Description).
				Lines(3),
		),
	).WithShowHelp(false)
}
