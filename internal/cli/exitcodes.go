package cli

import (
	"errors"

	"github.com/thenoetrevino/tablero/internal/dashboard"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unreadable files or any failure that doesn't fit below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments or unknown flags.
	ExitUsage = 2

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a layout file that is not valid YAML or breaks the layout rules.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: an unknown id strategy.
	ExitValidation = 5
)

// ErrUsage marks errors caused by how a command was invoked
var ErrUsage = errors.New("usage error")

var dataErrors = []error{
	dashboard.ErrNoCategories,
	dashboard.ErrEmptyCategoryID,
	dashboard.ErrDuplicateCategory,
	dashboard.ErrEmptyWidgetID,
	dashboard.ErrDuplicateWidgetID,
	dashboard.ErrEmptyWidgetName,
}

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrUsage) {
		return ExitUsage
	}
	if errors.Is(err, dashboard.ErrUnknownIDStrategy) {
		return ExitValidation
	}
	for _, target := range dataErrors {
		if errors.Is(err, target) {
			return ExitDataErr
		}
	}
	return ExitError
}
