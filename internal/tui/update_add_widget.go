package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/services/widget"
	"github.com/thenoetrevino/tablero/internal/tui/huhforms"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/types"
)

// openAddWidget shows the add widget dialog targeting categoryID
func (m Model) openAddWidget(categoryID types.CategoryID) (tea.Model, tea.Cmd) {
	m.AddWidgetState.Open(categoryID)
	m.UIState.SetMode(state.AddWidgetMode)
	return m, m.buildAddWidgetForm()
}

// buildAddWidgetForm creates the huh form bound to the current draft
func (m Model) buildAddWidgetForm() tea.Cmd {
	categoryName := string(m.AddWidgetState.CategoryID())
	if category, ok := m.AppState.Dashboard().Category(m.AddWidgetState.CategoryID()); ok {
		categoryName = category.Name
	}

	width, _ := layers.CalculateModalDimensions(0, m.UIState.Width(), m.UIState.Height())
	textLines := max(m.UIState.Height()/6, 3)

	m.AddWidgetState.Form = huhforms.CreateAddWidgetForm(
		categoryName,
		&m.AddWidgetState.Draft.Name,
		&m.AddWidgetState.Draft.Text,
		&m.AddWidgetState.Confirm,
		textLines,
	).
		WithTheme(huhforms.AddWidgetTheme(m.Config.ColorScheme)).
		WithWidth(max(width-layers.ModalChromeWidth, 20))

	return m.AddWidgetState.Form.Init()
}

// updateAddWidget handles all messages when in AddWidgetMode
// This is separated out because forms need to receive ALL messages, not just KeyMsg
func (m Model) updateAddWidget(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m.closeAddWidget()
		case m.Config.KeyMappings.SaveForm:
			return m.submitAddWidget()
		}
	}

	form := m.AddWidgetState.Form
	if form == nil {
		return m.closeAddWidget()
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.AddWidgetState.Form = f
	}

	switch m.AddWidgetState.Form.State {
	case huh.StateCompleted:
		if !m.AddWidgetState.Confirm {
			return m.closeAddWidget()
		}
		return m.submitAddWidget()
	case huh.StateAborted:
		return m.closeAddWidget()
	}

	return m, cmd
}

// submitAddWidget adds the drafted widget and closes the dialog.
// A blank name keeps the dialog open with the draft intact.
func (m Model) submitAddWidget() (tea.Model, tea.Cmd) {
	if !m.AddWidgetState.CanSubmit() {
		m.NotificationState.Add(state.LevelWarning, huhforms.ErrNameRequired.Error())
		if m.AddWidgetState.Form == nil || m.AddWidgetState.Form.State != huh.StateNormal {
			return m, m.buildAddWidgetForm()
		}
		return m, nil
	}

	req := widget.AddWidgetRequest{
		CategoryID: m.AddWidgetState.CategoryID(),
		Name:       m.AddWidgetState.Draft.Name,
		Text:       m.AddWidgetState.Draft.Text,
	}
	if _, err := m.Service.AddWidget(req); err != nil {
		slog.Debug("add widget ignored", "category", req.CategoryID, "error", err)
	}

	return m.closeAddWidget()
}

// closeAddWidget hides the dialog, discarding the draft and the selected category
func (m Model) closeAddWidget() (tea.Model, tea.Cmd) {
	m.AddWidgetState.Close()
	m.NotificationState.Clear()
	m.UIState.SetMode(state.NormalMode)
	m.clampSelection()
	return m, tea.ClearScreen
}
