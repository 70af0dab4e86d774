package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/tui"
)

// Options controls one TUI session
type Options struct {
	App   app.Options
	Debug bool
}

// Launch starts the TUI application
func Launch(opts Options) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	// Initialize logging to file before anything else
	logFile, err := logging.Init(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(cfg, opts.App)
	if err != nil {
		return err
	}

	model := tui.InitialModel(application.WidgetService, cfg)
	defer model.Close()

	slog.Info("tablero starting",
		"categories", len(application.Store().Snapshot().Categories),
		"layout", opts.App.LayoutFile,
		"id_strategy", cfg.Dashboard.IDStrategy,
	)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("tablero exiting", "revision", application.Store().Revision())
	return nil
}
