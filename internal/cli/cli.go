package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
)

// Persistent flags shared by the root command and its subcommands
const (
	FlagLayout     = "layout"
	FlagIDStrategy = "id-strategy"
	FlagDebug      = "debug"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
}

// NewCLI loads the config and builds a dashboard session for one command
func NewCLI(opts app.Options) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dashboard: %w", err)
	}

	return &CLI{App: application}, nil
}

// OptionsFromFlags reads the dashboard overrides from the persistent flags.
// Flags a command does not define are treated as unset.
func OptionsFromFlags(cmd *cobra.Command) app.Options {
	layout, _ := cmd.Flags().GetString(FlagLayout)
	strategy, _ := cmd.Flags().GetString(FlagIDStrategy)
	return app.Options{
		LayoutFile: layout,
		IDStrategy: strategy,
	}
}
