package state

import "github.com/thenoetrevino/tablero/internal/models"

// AppState holds the latest dashboard snapshot seen by the TUI.
// It is kept current by subscribing SetDashboard to the session store.
type AppState struct {
	dashboard models.Dashboard

	// updates counts the snapshots received since creation
	updates int
}

// NewAppState creates an AppState holding the initial dashboard.
func NewAppState(initial models.Dashboard) *AppState {
	return &AppState{dashboard: initial}
}

// Dashboard returns the current snapshot.
func (s *AppState) Dashboard() models.Dashboard {
	return s.dashboard
}

// SetDashboard installs a new snapshot.
func (s *AppState) SetDashboard(d models.Dashboard) {
	s.dashboard = d
	s.updates++
}

// Categories returns every category of the current snapshot.
func (s *AppState) Categories() []models.Category {
	return s.dashboard.Categories
}

// TotalWidgetCount returns the number of widget placements across all categories.
func (s *AppState) TotalWidgetCount() int {
	return s.dashboard.WidgetCount()
}

// Updates returns how many snapshots have been received.
func (s *AppState) Updates() int {
	return s.updates
}
