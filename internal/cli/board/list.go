package board

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the dashboard",
		Long: `Print every category and its widgets.

Examples:
  # Human-readable list
  tablero list

  # A custom layout
  tablero list --layout=./layout.yaml

  # JSON output for scripts
  tablero list --json

  # Quiet mode (one widget id per line)
  tablero list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (widget ids only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewOutputFormatter(cmd)

	cliInstance, err := cli.NewCLI(cli.OptionsFromFlags(cmd))
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	categories := cliInstance.App.WidgetService.Snapshot().Categories

	// Output based on mode
	if formatter.Quiet {
		return printIDs(formatter.Out, categories)
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"categories": toJSON(categories),
		})
	}

	styles.Init(cliInstance.App.Config.ColorScheme)
	return printCategories(formatter.Out, categories)
}
