package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For widget ids
	ValueStyle    lipgloss.Style // For widget names

	// Status styles
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderCategoryHeading renders "Name (id) · N widgets"
func RenderCategoryHeading(c models.Category) string {
	return TitleStyle.Render(c.Name) + " " +
		SubtitleStyle.Render(fmt.Sprintf("(%s) · %d widgets", c.ID, len(c.Widgets)))
}

// RenderWidgetLine renders one widget as an indented "id  name  text" line
func RenderWidgetLine(w models.Widget) string {
	return "  " + LabelStyle.Render(fmt.Sprintf("%-10s", w.ID)) + " " +
		ValueStyle.Render(w.Name) + " " +
		SubtitleStyle.Render("- "+w.Text)
}
