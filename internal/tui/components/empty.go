package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// RenderNoResults renders the empty search state.
// suggestion is shown as a "did you mean" hint when non-empty.
func RenderNoResults(query string, suggestion string) string {
	content := fmt.Sprintf("No results for %q", query)
	if suggestion != "" {
		content += "\n" + fmt.Sprintf("Did you mean %q?", suggestion)
	}
	return EmptyStateStyle.Render(content)
}

// RenderHeader renders the board title line
func RenderHeader(title string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Render(TitleStyle.Render(title))
}
