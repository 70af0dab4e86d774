package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderWidget renders a single widget as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Widget Name}       ┃
//	┃ {text preview...}   ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// This has a fixed width and height
func RenderWidget(w models.Widget, selected bool) string {
	var bg, border string
	if selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	} else {
		bg = theme.WidgetBg
		border = theme.Subtle
	}

	name := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + truncate(w.Name, widgetNameMaxLength))

	text := w.Text
	if text == "" {
		text = models.DefaultWidgetText
	}
	preview := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(" " + truncate(firstLine(text), widgetTextMaxLength))

	style := WidgetStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Height(WidgetCardHeight - 2)

	return style.Render(name + "\n" + preview)
}

// RenderAddWidgetPlaceholder renders the card that opens the add widget dialog
func RenderAddWidgetPlaceholder(selected bool) string {
	style := PlaceholderStyle
	if selected {
		style = style.
			BorderForeground(lipgloss.Color(theme.Create)).
			Foreground(lipgloss.Color(theme.Create)).
			Bold(true)
	}
	return style.Render(AddWidgetLabel)
}

// truncate shortens s to max runes, marking the cut with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
