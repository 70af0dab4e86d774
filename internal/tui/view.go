package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

// render composes the board with the modal and notification layers for the current mode
func (m Model) render() string {
	// Layer-based rendering: always show base board with modal overlays
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderBoard()),
	}

	var modalLayer *lipgloss.Layer
	switch m.UIState.Mode() {
	case state.AddWidgetMode:
		modalLayer = m.renderAddWidgetLayer()
	case state.ManageMode:
		modalLayer = m.renderManageLayer()
	case state.DetailMode:
		modalLayer = m.renderDetailLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	layers = append(layers, m.NotificationState.GetLayers(components.RenderNotification)...)

	return lipgloss.NewCanvas(layers...).Render()
}
