// Package launcher runs the interactive TUI with signal-aware shutdown.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/rutina/internal/app"
	"github.com/thenoetrevino/rutina/internal/tui"
)

// Launch runs the TUI until the user quits or a termination signal
// arrives. The caller owns the application wiring and the database
// lifecycle; Launch only owns the terminal program.
func Launch(parent context.Context, application *app.App) error {
	// Root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := tui.InitialModel(application.HabitService)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Give in-flight database writes a moment to finish
		time.Sleep(500 * time.Millisecond)
	}

	return nil
}
