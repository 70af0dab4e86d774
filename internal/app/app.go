package app

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/dashboard"
	"github.com/thenoetrevino/tablero/internal/services/widget"
)

// Options override the dashboard settings of the config for one run
type Options struct {
	// LayoutFile replaces the built-in seed when set
	LayoutFile string

	// IDStrategy is "sequence" or "uuid"
	IDStrategy string
}

// App holds all application services and provides dependency injection.
// One App is one dashboard session: its store lives as long as the App.
type App struct {
	Config *config.Config

	store *dashboard.Store

	// Service layer
	WidgetService widget.Service
}

// New creates a new App with its dashboard loaded and services initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts Options) (*App, error) {
	layoutFile := opts.LayoutFile
	if layoutFile == "" {
		layoutFile = cfg.Dashboard.LayoutFile
	}

	initial := dashboard.Seed()
	if layoutFile != "" {
		loaded, err := dashboard.LoadLayout(layoutFile)
		if err != nil {
			return nil, fmt.Errorf("load layout %s: %w", layoutFile, err)
		}
		initial = loaded
	}

	strategy := opts.IDStrategy
	if strategy == "" {
		strategy = cfg.Dashboard.IDStrategy
	}
	ids, err := dashboard.NewIDSource(strategy, initial)
	if err != nil {
		return nil, err
	}

	store := dashboard.NewStore(initial)

	return &App{
		Config:        cfg,
		store:         store,
		WidgetService: widget.NewService(store, ids),
	}, nil
}

// Store returns the session's dashboard store
func (a *App) Store() *dashboard.Store {
	return a.store
}
