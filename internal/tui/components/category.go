package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// CategoryProps describes one category column on the board
type CategoryProps struct {
	Category models.Category

	// Selected marks the column holding the cursor
	Selected bool

	// SelectedIdx is the cursor row; len(Category.Widgets) is the add placeholder
	SelectedIdx int

	// Height is the fixed total height of the column (0 for auto)
	Height int

	// ScrollOffset is the index of the first visible widget
	ScrollOffset int
}

// RenderCategory renders a complete category column with its title, widgets
// and the trailing "+ Add Widget" placeholder
//
// Layout:
//
//	{Category Name} ({count})
//	▲ (if scrolled down)
//	{Widget 1}
//	{Widget 2}
//	...
//	▼ (if more widgets below)
//	[+ Add Widget]
func RenderCategory(props CategoryProps) string {
	widgets := props.Category.Widgets

	header := fmt.Sprintf("%s (%d)", props.Category.Name, len(widgets))
	content := TitleStyle.Render(truncate(header, categoryContentWidth-3)) + "\n"

	visible := VisibleWidgetCount(props.Height)
	offset := min(max(props.ScrollOffset, 0), max(len(widgets)-visible, 0))
	end := min(offset+visible, len(widgets))

	if offset > 0 {
		content += IndicatorStyle.Render("▲ more above") + "\n"
	} else {
		content += "\n"
	}

	if len(widgets) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true)
		content += emptyStyle.Render("No widgets") + "\n"
	}

	for i, w := range widgets[offset:end] {
		idx := offset + i
		content += RenderWidget(w, props.Selected && idx == props.SelectedIdx) + "\n"
	}

	if end < len(widgets) {
		content += IndicatorStyle.Render("▼ more below") + "\n"
	}

	content += RenderAddWidgetPlaceholder(props.Selected && props.SelectedIdx == len(widgets))

	style := CategoryStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(props.Height - 2)
		content = clampLines(content, props.Height-2)
	}

	return style.Render(content)
}

// VisibleWidgetCount returns how many widget cards fit in a column of the given height
func VisibleWidgetCount(height int) int {
	if height <= 0 {
		return 1 << 16
	}
	available := height - categoryOverhead - PlaceholderHeight
	return max(available/WidgetCardHeight, 1)
}

func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
