package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// renderAddWidgetLayer renders the add widget dialog as a layer
func (m Model) renderAddWidgetLayer() *lipgloss.Layer {
	if m.AddWidgetState.Form == nil {
		return nil
	}

	categoryName := string(m.AddWidgetState.CategoryID())
	if category, ok := m.AppState.Dashboard().Category(m.AddWidgetState.CategoryID()); ok {
		categoryName = category.Name
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Create))
	width, _ := layers.CalculateModalDimensions(0, m.UIState.Width(), m.UIState.Height())

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Add Widget to "+categoryName),
		"",
		m.AddWidgetState.Form.View(),
		"",
		components.FooterStyle.Render(components.FooterAddWidget),
	)

	formBox := components.AddWidgetBoxStyle.
		Width(width).
		Render(content)

	return layers.CreateCenteredLayer(formBox, m.UIState.Width(), m.UIState.Height())
}

// renderManageLayer renders the manage widgets panel as a layer.
// One tab per category; rows are every widget of the dashboard with its origin.
func (m Model) renderManageLayer() *lipgloss.Layer {
	categories := m.AppState.Categories()
	rows := m.manageRows()

	width, height := layers.CalculateModalDimensions(len(rows)+3, m.UIState.Width(), m.UIState.Height())
	innerWidth := max(width-layers.ModalChromeWidth, 10)
	listHeight := max(height-layers.ModalChromeHeight-3, 1)

	tabs := make([]string, len(categories))
	for i, category := range categories {
		tabs[i] = fmt.Sprintf("%s (%d)", category.Name, len(category.Widgets))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Manage Widgets"),
		"",
		components.RenderTabs(tabs, m.ManageState.Tab(), innerWidth),
		"",
		components.RenderManageList(rows, m.ManageState.Cursor(), innerWidth, listHeight),
		"",
		components.FooterStyle.Render(components.FooterManage),
	)

	box := components.ManageBoxStyle.
		Width(width).
		Render(content)

	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

// renderDetailLayer renders the selected widget's text through glamour
func (m Model) renderDetailLayer() *lipgloss.Layer {
	w := m.DetailState.Widget

	width, height := layers.CalculateModalDimensions(0, m.UIState.Width(), m.UIState.Height())
	innerWidth := max(width-layers.ModalChromeWidth, 10)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	body := components.RenderDetail(components.DetailProps{
		Text:  w.Text,
		Width: innerWidth,
		Style: m.Config.Dashboard.MarkdownStyle,
	})

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(w.Name),
		subtleStyle.Render(m.DetailState.CategoryName+" · "+string(w.ID)),
		"",
		body,
		"",
		components.FooterStyle.Render(components.FooterDetail),
	)

	box := components.DetailBoxStyle.
		Width(width).
		MaxHeight(height).
		Render(content)

	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

// renderHelpLayer renders the keyboard shortcuts help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(layers.HelpWidth).
		Render(m.generateHelpText())

	return layers.CreateCenteredLayer(helpBox, m.UIState.Width(), m.UIState.Height())
}

// generateHelpText creates help text based on current key mappings
func (m Model) generateHelpText() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`TABLERO - Keyboard Shortcuts

WIDGETS
  %-8s Add widget to current category
  %-8s Remove selected widget
  %-8s View selected widget
  %-8s Manage widgets

MANAGE PANEL
  %-8s Toggle widget in category
  %-8s Done

ADD WIDGET
  %-8s Save widget
  esc      Cancel

NAVIGATION
  %-8s Previous category
  %-8s Next category
  %-8s Previous widget
  %-8s Next widget
  %-8s Scroll viewport left
  %-8s Scroll viewport right

SEARCH
  %-8s Search widgets
  esc      Clear search

OTHER
  %-8s Show this help
  %-8s Quit

Press any key to close`,
		km.AddWidget,
		km.RemoveWidget,
		km.ViewWidget,
		km.ManageWidgets,
		km.ToggleWidget,
		"enter",
		km.SaveForm,
		km.PrevCategory,
		km.NextCategory,
		km.PrevWidget,
		km.NextWidget,
		km.ScrollViewportLeft,
		km.ScrollViewportRight,
		km.Search,
		km.ShowHelp,
		km.Quit,
	)
}
