// Package cli implements the rutina command-line surface.
package cli

import (
	"context"

	"github.com/thenoetrevino/rutina/internal/app"
)

// Context carries the shared application container into command Run methods.
type Context struct {
	App *app.App
	Ctx context.Context
}
