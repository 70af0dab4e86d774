package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/setup"
	"github.com/thenoetrevino/tablero/internal/launcher"
)

// Version is set at build time with -ldflags "-X github.com/thenoetrevino/tablero/cmd.Version=..."
var Version = "dev"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - A terminal widget dashboard",
		Long: `Tablero is a terminal dashboard of widgets grouped into categories.
Search, add and remove widgets, or pick which widgets each category shows.
Everything lives in memory for the session.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool(cli.FlagDebug)
			return launcher.Launch(launcher.Options{
				App:   cli.OptionsFromFlags(cmd),
				Debug: debug,
			})
		},
	}

	cmd.PersistentFlags().String(cli.FlagLayout, "", "YAML layout file to load instead of the built-in dashboard")
	cmd.PersistentFlags().String(cli.FlagIDStrategy, "", `Widget id strategy: "sequence" or "uuid" (default from config)`)
	cmd.Flags().Bool(cli.FlagDebug, false, "Write debug logs to ~/.tablero/logs/tablero.log")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	})

	cmd.AddCommand(board.ListCmd())
	cmd.AddCommand(board.SearchCmd())
	cmd.AddCommand(setup.ConfigCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tablero version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tablero %s\n", Version)
			return err
		},
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
