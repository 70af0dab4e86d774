package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config/colors"
)

// AddWidgetTheme styles the add widget dialog from the color scheme.
// The dialog border uses the Create color, so focused fields follow it;
// the name prompt and the confirm button use the accent.
func AddWidgetTheme(scheme colors.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)

		create := lipgloss.Color(scheme.Create)
		accent := lipgloss.Color(scheme.Accent)
		title := lipgloss.Color(scheme.Title)
		subtle := lipgloss.Color(scheme.Subtle)
		normal := lipgloss.Color(scheme.Normal)
		invalid := lipgloss.Color(scheme.Delete)

		f := &s.Focused
		f.Base = f.Base.BorderForeground(create)
		f.Title = f.Title.Foreground(title).Bold(true)
		f.Description = f.Description.Foreground(subtle)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(invalid)
		f.ErrorMessage = f.ErrorMessage.Foreground(invalid)

		// Name and text fields
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)
		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(subtle)
		f.TextInput.Text = f.TextInput.Text.Foreground(normal)

		// Add / Cancel
		f.FocusedButton = f.FocusedButton.
			Foreground(lipgloss.Color(scheme.Background)).
			Background(create).
			Bold(true)
		f.BlurredButton = f.BlurredButton.
			Foreground(normal).
			Background(lipgloss.Color(scheme.WidgetBackground))

		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = s.Blurred.Title.Foreground(subtle).Bold(false)
		s.Blurred.TextInput.Text = s.Blurred.TextInput.Text.Foreground(subtle)

		return s
	})
}
