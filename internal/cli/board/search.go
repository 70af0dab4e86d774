package board

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the widgets matching a query",
		Long: `Print the categories and widgets whose name or text contains the
query, ignoring case. The query is used as typed; a blank query prints the
whole dashboard.

Examples:
  # Widgets mentioning images
  tablero search image

  # JSON output with a suggestion when nothing matches
  tablero search imags --json
`,
		RunE: runSearch,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (widget ids only)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	formatter := cli.NewOutputFormatter(cmd)

	if len(args) != 1 {
		err := fmt.Errorf("%w: search takes exactly one query, got %d", cli.ErrUsage, len(args))
		if fmtErr := formatter.ErrorWithSuggestion("MISSING_QUERY", err.Error(), `quote queries with spaces: tablero search "workload alerts"`); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	query := args[0]

	cliInstance, err := cli.NewCLI(cli.OptionsFromFlags(cmd))
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	svc := cliInstance.App.WidgetService
	categories := svc.Search(query)

	var suggestion string
	if len(categories) == 0 && strings.TrimSpace(query) != "" {
		suggestion, _ = svc.Suggest(query)
	}

	// Output based on mode
	if formatter.Quiet {
		return printIDs(formatter.Out, categories)
	}

	if formatter.JSON {
		data := map[string]any{
			"query":      query,
			"categories": toJSON(categories),
		}
		if suggestion != "" {
			data["suggestion"] = suggestion
		}
		return formatter.Success(data)
	}

	styles.Init(cliInstance.App.Config.ColorScheme)

	// Human-readable output
	if len(categories) == 0 {
		if _, err := fmt.Fprintf(formatter.Out, "No results for %q\n", query); err != nil {
			return err
		}
		if suggestion != "" {
			_, err := fmt.Fprintln(formatter.Out, styles.WarningStyle.Render(fmt.Sprintf("Did you mean %q?", suggestion)))
			return err
		}
		return nil
	}

	return printCategories(formatter.Out, categories)
}
