package widget

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tablero/internal/dashboard"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Service defines all widget-related operations of a dashboard session
type Service interface {
	// Read operations
	Snapshot() models.Dashboard
	Search(query string) []models.Category
	Suggest(query string) (string, bool)
	Origins() []models.WidgetOrigin

	// Write operations
	AddWidget(req AddWidgetRequest) (models.Widget, error)
	RemoveWidget(categoryID types.CategoryID, widgetID types.WidgetID) error
	SetMembership(categoryID types.CategoryID, w models.Widget, present bool) error

	// Subscribe registers fn for every new snapshot
	Subscribe(fn func(models.Dashboard)) (unsubscribe func())
}

// AddWidgetRequest encapsulates data for creating a widget
type AddWidgetRequest struct {
	CategoryID types.CategoryID
	Name       string
	Text       string
}

// service implements Service on top of a dashboard.Store
type service struct {
	store *dashboard.Store
	ids   dashboard.IDSource
}

// NewService creates a widget service for one session's store
func NewService(store *dashboard.Store, ids dashboard.IDSource) Service {
	return &service{
		store: store,
		ids:   ids,
	}
}

// Snapshot returns the current dashboard
func (s *service) Snapshot() models.Dashboard {
	return s.store.Snapshot()
}

// Search returns the derived view for query
func (s *service) Search(query string) []models.Category {
	return dashboard.Search(s.store.Snapshot(), query)
}

// Suggest returns a close match for a query that found nothing
func (s *service) Suggest(query string) (string, bool) {
	return dashboard.Suggest(s.store.Snapshot(), query)
}

// Origins lists every widget with the category it is in
func (s *service) Origins() []models.WidgetOrigin {
	return dashboard.ListAllWidgetsWithOrigin(s.store.Snapshot())
}

// Subscribe registers fn with the underlying store
func (s *service) Subscribe(fn func(models.Dashboard)) func() {
	return s.store.Subscribe(fn)
}

// AddWidget validates the request and appends a new widget to its category.
// Returns the created widget.
func (s *service) AddWidget(req AddWidgetRequest) (models.Widget, error) {
	if err := s.validateAddWidget(req); err != nil {
		slog.Debug("add widget skipped", "category", req.CategoryID, "error", err)
		return models.Widget{}, err
	}

	next, changed := s.store.Replace(func(d models.Dashboard) models.Dashboard {
		return dashboard.AddWidget(d, req.CategoryID, req.Name, req.Text, s.ids)
	})
	if !changed {
		return models.Widget{}, fmt.Errorf("add widget to %q: %w", req.CategoryID, ErrCategoryNotFound)
	}

	category, _ := next.Category(req.CategoryID)
	created := category.Widgets[len(category.Widgets)-1]
	slog.Info("widget added", "category", req.CategoryID, "widget", created.ID, "name", created.Name)
	return created, nil
}

// RemoveWidget removes a widget from a category
func (s *service) RemoveWidget(categoryID types.CategoryID, widgetID types.WidgetID) error {
	category, ok := s.store.Snapshot().Category(categoryID)
	if !ok {
		return ErrCategoryNotFound
	}
	if !category.HasWidget(widgetID) {
		slog.Debug("remove widget skipped", "category", categoryID, "widget", widgetID)
		return ErrWidgetNotFound
	}

	s.store.Replace(func(d models.Dashboard) models.Dashboard {
		return dashboard.RemoveWidget(d, categoryID, widgetID)
	})
	slog.Info("widget removed", "category", categoryID, "widget", widgetID)
	return nil
}

// SetMembership adds w to, or removes it from, a category.
// Adding a widget whose id the category already holds is rejected so ids
// stay unique per category.
func (s *service) SetMembership(categoryID types.CategoryID, w models.Widget, present bool) error {
	category, ok := s.store.Snapshot().Category(categoryID)
	if !ok {
		return ErrCategoryNotFound
	}

	has := category.HasWidget(w.ID)
	switch {
	case present && has:
		return ErrDuplicateWidget
	case !present && !has:
		return ErrWidgetNotFound
	}

	s.store.Replace(func(d models.Dashboard) models.Dashboard {
		return dashboard.ToggleWidgetInCategory(d, categoryID, w, present)
	})
	slog.Info("widget membership changed", "category", categoryID, "widget", w.ID, "present", present)
	return nil
}

func (s *service) validateAddWidget(req AddWidgetRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	if _, ok := s.store.Snapshot().Category(req.CategoryID); !ok {
		return ErrCategoryNotFound
	}
	return nil
}
