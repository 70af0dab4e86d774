package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/types"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.Search:
		return m.handleEnterSearch()
	case km.AddWidget:
		return m.handleAddWidget()
	case km.ViewWidget:
		return m.handleViewWidget()
	case km.RemoveWidget:
		return m.handleRemoveWidget()
	case km.ManageWidgets:
		return m.handleManageWidgets()
	case km.ScrollViewportRight:
		return m.handleScrollRight()
	case km.ScrollViewportLeft:
		return m.handleScrollLeft()
	case km.PrevCategory, "left":
		return m.handleNavigateLeft()
	case km.NextCategory, "right":
		return m.handleNavigateRight()
	case km.NextWidget, "down":
		return m.handleNavigateDown()
	case km.PrevWidget, "up":
		return m.handleNavigateUp()
	case "esc":
		return m.handleClearFilter()
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UIState.SetMode(state.HelpMode)
	return m, nil
}

// handleAddWidget opens the add widget dialog for the selected category
func (m Model) handleAddWidget() (tea.Model, tea.Cmd) {
	category, ok := m.getCurrentCategory()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No category selected")
		return m, nil
	}
	return m.openAddWidget(category.ID)
}

// handleViewWidget opens the detail view, or the add dialog on the placeholder
func (m Model) handleViewWidget() (tea.Model, tea.Cmd) {
	if m.isOnAddPlaceholder() {
		return m.handleAddWidget()
	}

	w, ok := m.getCurrentWidget()
	if !ok {
		return m, nil
	}
	category, _ := m.getCurrentCategory()

	m.DetailState.Show(w, category.Name)
	m.UIState.SetMode(state.DetailMode)
	return m, nil
}

// handleRemoveWidget removes the selected widget from its category immediately
func (m Model) handleRemoveWidget() (tea.Model, tea.Cmd) {
	w, ok := m.getCurrentWidget()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No widget selected")
		return m, nil
	}
	category, _ := m.getCurrentCategory()

	if err := m.Service.RemoveWidget(category.ID, w.ID); err != nil {
		slog.Debug("remove widget ignored", "category", category.ID, "widget", w.ID, "error", err)
	}

	m.clampSelection()
	return m, nil
}

// handleManageWidgets opens the manage panel on the selected category's tab
func (m Model) handleManageWidgets() (tea.Model, tea.Cmd) {
	tab := 0
	if category, ok := m.getCurrentCategory(); ok {
		tab = max(m.AppState.Dashboard().CategoryIndex(category.ID), 0)
	}

	m.ManageState.Open(tab)
	m.ManageState.Clamp(len(m.AppState.Categories()), len(m.manageOrigins()))
	m.UIState.SetMode(state.ManageMode)
	return m, nil
}

// handleClearFilter drops an active search filter
func (m Model) handleClearFilter() (tea.Model, tea.Cmd) {
	if m.SearchState.Query == "" {
		return m, nil
	}
	m.SearchState.Clear()
	m.SearchState.Deactivate()
	m.UIState.ResetSelection()
	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UIState.SelectedCategory() > 0 {
		m.UIState.SetSelectedCategory(m.UIState.SelectedCategory() - 1)
		m.UIState.SetSelectedWidget(0)
		m.UIState.EnsureSelectionVisible(m.UIState.SelectedCategory())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first category")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UIState.SelectedCategory() < len(m.visibleCategories())-1 {
		m.UIState.SetSelectedCategory(m.UIState.SelectedCategory() + 1)
		m.UIState.SetSelectedWidget(0)
		m.UIState.EnsureSelectionVisible(m.UIState.SelectedCategory())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last category")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	category, ok := m.getCurrentCategory()
	if !ok {
		return m, nil
	}

	if m.UIState.SelectedWidget() > 0 {
		m.UIState.SetSelectedWidget(m.UIState.SelectedWidget() - 1)
		m.ensureWidgetVisible(category.ID)
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first widget")
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	category, ok := m.getCurrentCategory()
	if !ok {
		return m, nil
	}

	// The last row is the add placeholder
	if m.UIState.SelectedWidget() < len(category.Widgets) {
		m.UIState.SetSelectedWidget(m.UIState.SelectedWidget() + 1)
		m.ensureWidgetVisible(category.ID)
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last widget")
	}
	return m, nil
}

func (m Model) handleScrollRight() (tea.Model, tea.Cmd) {
	if m.UIState.ScrollViewportRight(len(m.visibleCategories())) {
		// Keep the selection inside the viewport
		if m.UIState.SelectedCategory() < m.UIState.ViewportOffset() {
			m.UIState.SetSelectedCategory(m.UIState.ViewportOffset())
			m.UIState.SetSelectedWidget(0)
		}
	}
	return m, nil
}

func (m Model) handleScrollLeft() (tea.Model, tea.Cmd) {
	if m.UIState.ScrollViewportLeft() {
		last := m.UIState.ViewportOffset() + m.UIState.ViewportSize() - 1
		if m.UIState.SelectedCategory() > last {
			m.UIState.SetSelectedCategory(last)
			m.UIState.SetSelectedWidget(0)
		}
	}
	return m, nil
}

func (m Model) ensureWidgetVisible(categoryID types.CategoryID) {
	visible := components.VisibleWidgetCount(m.UIState.ContentHeight())
	m.UIState.EnsureWidgetVisible(categoryID, m.UIState.SelectedWidget(), visible)
}
