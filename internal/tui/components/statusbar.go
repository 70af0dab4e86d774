package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps holds what the status bar shows
type StatusBarProps struct {
	Width int

	// Query is the current search text; Searching is true while it is being typed
	Query     string
	Searching bool

	Categories int
	Widgets    int
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the search prompt while searching, the active filter, or the app name
// Right side: widget totals and "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	var left string
	switch {
	case props.Searching:
		left = StatusBarSearchStyle.Render("/" + props.Query + "_")
	case props.Query != "":
		left = StatusBarSearchStyle.Render(fmt.Sprintf("filter: %q (esc to clear)", props.Query))
	default:
		left = StatusBarStyle.Render(" Tablero - Widget Dashboard ")
	}

	right := StatusBarStyle.Render(fmt.Sprintf(
		" %d widgets in %d categories │ press ? for help ",
		props.Widgets, props.Categories,
	))

	// Calculate space between left and right text
	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
