package theme

import "github.com/thenoetrevino/tablero/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Background     string
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Delete         string
	SelectedBorder string
	SelectedBg     string
	WidgetBg       string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors colors.ColorScheme) {
	Background = colors.Background
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Delete = colors.Delete
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	WidgetBg = colors.WidgetBackground
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
