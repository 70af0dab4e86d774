package components

import "github.com/thenoetrevino/tablero/internal/tui/state"

// RenderNotification renders a compact notification banner by severity
func RenderNotification(n state.Notification) string {
	switch n.Level {
	case state.LevelWarning:
		return WarningBannerStyle.Render("⚠ " + n.Message)
	case state.LevelError:
		return ErrorBannerStyle.Render("✕ " + n.Message)
	default:
		return InfoBannerStyle.Render("🔔 " + n.Message)
	}
}
