package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// handleManageMode handles keyboard input in the manage widgets panel
func (m Model) handleManageMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	tabCount := len(m.AppState.Categories())

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		return m.closeManage()
	case km.ToggleWidget:
		return m.handleToggleMembership()
	case km.NextWidget, "down":
		m.ManageState.MoveCursorDown(len(m.manageOrigins()))
	case km.PrevWidget, "up":
		m.ManageState.MoveCursorUp()
	case km.NextCategory, "right", "tab":
		m.ManageState.NextTab(tabCount)
	case km.PrevCategory, "left", "shift+tab":
		m.ManageState.PrevTab(tabCount)
	}

	return m, nil
}

// handleToggleMembership flips whether the row's widget is in the tab's category
func (m Model) handleToggleMembership() (tea.Model, tea.Cmd) {
	tab, ok := m.manageTabCategory()
	origins := m.manageOrigins()
	cursor := m.ManageState.Cursor()
	if !ok || cursor >= len(origins) {
		return m, nil
	}

	row := origins[cursor]
	present := !tab.HasWidget(row.Widget.ID)
	if err := m.Service.SetMembership(tab.ID, row.Widget, present); err != nil {
		slog.Debug("toggle widget ignored", "category", tab.ID, "widget", row.Widget.ID, "error", err)
	}

	// Rows are recomputed from the new snapshot
	m.ManageState.Clamp(len(m.AppState.Categories()), len(m.manageOrigins()))
	m.clampSelection()
	return m, nil
}

func (m Model) closeManage() (tea.Model, tea.Cmd) {
	m.ManageState.Close()
	m.UIState.SetMode(state.NormalMode)
	m.clampSelection()
	return m, nil
}
