package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/thenoetrevino/rutina/internal/app"
	"github.com/thenoetrevino/rutina/internal/cli"
	"github.com/thenoetrevino/rutina/internal/config"
	"github.com/thenoetrevino/rutina/internal/database"
	"github.com/thenoetrevino/rutina/internal/importer"
	"github.com/thenoetrevino/rutina/internal/logging"
)

var CLI struct {
	Version  kong.VersionFlag
	Database string `help:"Database file path (overrides config)." type:"path"`
	FeedURL  string `help:"Habit feed URL (overrides config)."`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	List   cli.ListCmd   `cmd:"" help:"List active habits."`
	Add    cli.AddCmd    `cmd:"" help:"Add a new habit."`
	Edit   cli.EditCmd   `cmd:"" help:"Edit an existing habit."`
	Done   cli.DoneCmd   `cmd:"" help:"Toggle a habit's done-today flag."`
	Rm     cli.RmCmd     `cmd:"" help:"Delete a habit."`
	Import cli.ImportCmd `cmd:"" help:"Import habits from the remote feed."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("rutina"),
		kong.Description("Local-first habit tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	if CLI.Database != "" {
		cfg.Database = CLI.Database
	}
	if CLI.FeedURL != "" {
		cfg.FeedURL = CLI.FeedURL
	}

	ctx := context.Background()

	db, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	feed := importer.NewClient(cfg.FeedURL)

	appCtx := &cli.Context{
		App: app.New(repo, feed),
		Ctx: ctx,
	}

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
