package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/dashboard"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/widget"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Config  *config.Config
	Service widget.Service

	AppState          *state.AppState
	UIState           *state.UIState
	SearchState       *state.SearchState
	AddWidgetState    *state.AddWidgetState
	ManageState       *state.ManageState
	DetailState       *state.DetailState
	NotificationState *state.NotificationState

	unsubscribe func()
}

// InitialModel creates the TUI model for one dashboard session.
// The model follows every snapshot the service's store installs.
func InitialModel(svc widget.Service, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	appState := state.NewAppState(svc.Snapshot())

	m := Model{
		Config:            cfg,
		Service:           svc,
		AppState:          appState,
		UIState:           state.NewUIState(),
		SearchState:       state.NewSearchState(),
		AddWidgetState:    state.NewAddWidgetState(),
		ManageState:       state.NewManageState(),
		DetailState:       state.NewDetailState(),
		NotificationState: state.NewNotificationState(),
	}
	m.unsubscribe = svc.Subscribe(appState.SetDashboard)

	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Close stops following the store
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// visibleCategories returns the board as currently filtered by the search query
func (m Model) visibleCategories() []models.Category {
	return dashboard.Search(m.AppState.Dashboard(), m.SearchState.Query)
}

// getCurrentCategory returns the selected category among the visible ones
func (m Model) getCurrentCategory() (models.Category, bool) {
	categories := m.visibleCategories()
	idx := m.UIState.SelectedCategory()
	if idx < 0 || idx >= len(categories) {
		return models.Category{}, false
	}
	return categories[idx], true
}

// getCurrentWidget returns the selected widget.
// Returns false when the cursor is on the add placeholder or the board is empty.
func (m Model) getCurrentWidget() (models.Widget, bool) {
	category, ok := m.getCurrentCategory()
	if !ok {
		return models.Widget{}, false
	}
	idx := m.UIState.SelectedWidget()
	if idx < 0 || idx >= len(category.Widgets) {
		return models.Widget{}, false
	}
	return category.Widgets[idx], true
}

// isOnAddPlaceholder reports whether the cursor is on a category's "+ Add Widget" card
func (m Model) isOnAddPlaceholder() bool {
	category, ok := m.getCurrentCategory()
	return ok && m.UIState.SelectedWidget() == len(category.Widgets)
}

// clampSelection keeps the cursor on a row that exists after the board changed
func (m Model) clampSelection() {
	categories := m.visibleCategories()
	m.UIState.ClampSelection(len(categories), func(idx int) int {
		return len(categories[idx].Widgets) + 1
	})
}

// manageOrigins returns the rows of the manage panel: every widget with its origin
func (m Model) manageOrigins() []models.WidgetOrigin {
	return dashboard.ListAllWidgetsWithOrigin(m.AppState.Dashboard())
}

// manageTabCategory returns the category whose membership the manage panel edits
func (m Model) manageTabCategory() (models.Category, bool) {
	categories := m.AppState.Categories()
	idx := m.ManageState.Tab()
	if idx < 0 || idx >= len(categories) {
		return models.Category{}, false
	}
	return categories[idx], true
}

// manageRows builds the checkbox rows for the current tab
func (m Model) manageRows() []components.ManageRow {
	tab, _ := m.manageTabCategory()
	members := tab.WidgetIDs()

	origins := m.manageOrigins()
	rows := make([]components.ManageRow, len(origins))
	for i, o := range origins {
		rows[i] = components.ManageRow{
			Name:    o.Widget.Name,
			Origin:  o.CategoryName,
			Checked: members[o.Widget.ID],
		}
	}
	return rows
}
