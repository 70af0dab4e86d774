package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/dashboard"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// renderBoard renders the header, the visible categories and the status bar
func (m Model) renderBoard() string {
	width := m.UIState.Width()
	contentHeight := m.UIState.ContentHeight()

	header := components.RenderHeader("Tablero", width)

	categories := m.visibleCategories()
	var body string
	if len(categories) == 0 {
		body = m.renderEmptyBoard()
	} else {
		body = m.renderCategories(contentHeight)
	}
	body = lipgloss.NewStyle().Height(contentHeight).Render(body)

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:      width,
		Query:      m.SearchState.Query,
		Searching:  m.UIState.Mode() == state.SearchMode,
		Categories: len(m.AppState.Categories()),
		Widgets:    m.AppState.TotalWidgetCount(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, statusBar)
}

// renderCategories renders the categories inside the horizontal viewport
func (m Model) renderCategories(height int) string {
	categories := m.visibleCategories()

	start := m.UIState.ViewportOffset()
	end := min(start+m.UIState.ViewportSize(), len(categories))

	var columns []string
	if start > 0 {
		columns = append(columns, components.IndicatorStyle.Render("◀"))
	}
	for i := start; i < end; i++ {
		category := categories[i]
		selected := i == m.UIState.SelectedCategory()

		selectedIdx := -1
		if selected {
			selectedIdx = m.UIState.SelectedWidget()
		}

		columns = append(columns, components.RenderCategory(components.CategoryProps{
			Category:     category,
			Selected:     selected,
			SelectedIdx:  selectedIdx,
			Height:       height,
			ScrollOffset: m.UIState.WidgetScrollOffset(category.ID),
		}), "  ")
	}
	if end < len(categories) {
		columns = append(columns, components.IndicatorStyle.Render("▶"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderEmptyBoard renders the board when the view has no category
func (m Model) renderEmptyBoard() string {
	query := m.SearchState.Query
	if strings.TrimSpace(query) == "" {
		return components.EmptyStateStyle.Render("No categories")
	}

	suggestion, _ := dashboard.Suggest(m.AppState.Dashboard(), query)
	return components.RenderNoResults(query, suggestion)
}
