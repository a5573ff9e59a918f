package app

import (
	"github.com/thenoetrevino/rutina/internal/database"
	habitservice "github.com/thenoetrevino/rutina/internal/services/habit"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.HabitStore

	// Service layer (business logic / view-model)
	HabitService habitservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.HabitStore, feed habitservice.Feed) *App {
	return &App{
		repo:         repo,
		HabitService: habitservice.NewService(repo, feed),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.HabitStore {
	return a.repo
}
