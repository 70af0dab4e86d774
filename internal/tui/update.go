package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UIState.SetWidth(size.Width)
		m.UIState.SetHeight(size.Height)
		m.NotificationState.SetWindowSize(size.Width, size.Height)
		m.clampSelection()
	}

	// Forms need to receive ALL messages, not just KeyMsg
	if m.UIState.Mode() == state.AddWidgetMode {
		return m.updateAddWidget(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.UIState.Mode() {
	case state.SearchMode:
		return m.handleSearchMode(keyMsg)
	case state.ManageMode:
		return m.handleManageMode(keyMsg)
	case state.DetailMode:
		return m.handleDetailMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}
