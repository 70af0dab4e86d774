// Package dashboard holds the widget tree's pure operations, the derived
// search view, the seed layout and the store that owns the current snapshot.
//
// Every operation takes a Dashboard value and returns a new one. Failed
// preconditions are silent no-ops: the input is returned unchanged. Categories
// that an operation does not touch keep their widget slices, so callers can
// rely on identity for unaffected categories.
package dashboard

import (
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// AddWidget appends a new widget to the end of the target category.
// The name must be non-blank and the category must exist, otherwise d is
// returned unchanged. Empty text falls back to models.DefaultWidgetText.
func AddWidget(d models.Dashboard, categoryID types.CategoryID, name, text string, ids IDSource) models.Dashboard {
	if strings.TrimSpace(name) == "" {
		return d
	}
	idx := d.CategoryIndex(categoryID)
	if idx < 0 {
		return d
	}
	if text == "" {
		text = models.DefaultWidgetText
	}

	w := models.Widget{
		ID:   ids.NextID(),
		Name: name,
		Text: text,
	}
	return withWidgets(d, idx, appendWidget(d.Categories[idx].Widgets, w))
}

// RemoveWidget drops the widget with the given id from the target category.
// The order of the remaining widgets is preserved. Unknown category or widget
// ids leave d unchanged.
func RemoveWidget(d models.Dashboard, categoryID types.CategoryID, widgetID types.WidgetID) models.Dashboard {
	idx := d.CategoryIndex(categoryID)
	if idx < 0 {
		return d
	}
	current := d.Categories[idx].Widgets
	if !d.Categories[idx].HasWidget(widgetID) {
		return d
	}

	remaining := make([]models.Widget, 0, len(current)-1)
	for _, w := range current {
		if w.ID != widgetID {
			remaining = append(remaining, w)
		}
	}
	return withWidgets(d, idx, remaining)
}

// ToggleWidgetInCategory sets the membership of w in the target category.
// With present=true the widget is appended verbatim (id included); if the
// category already holds that id nothing happens, which keeps ids unique per
// category. With present=false it behaves exactly like RemoveWidget.
func ToggleWidgetInCategory(d models.Dashboard, categoryID types.CategoryID, w models.Widget, present bool) models.Dashboard {
	if !present {
		return RemoveWidget(d, categoryID, w.ID)
	}

	idx := d.CategoryIndex(categoryID)
	if idx < 0 || d.Categories[idx].HasWidget(w.ID) {
		return d
	}
	return withWidgets(d, idx, appendWidget(d.Categories[idx].Widgets, w))
}

// ListAllWidgetsWithOrigin flattens the tree into (widget, origin) rows in
// category order, then widget order. A widget listed in two categories shows
// up twice, once per origin.
func ListAllWidgetsWithOrigin(d models.Dashboard) []models.WidgetOrigin {
	origins := make([]models.WidgetOrigin, 0, d.WidgetCount())
	for _, c := range d.Categories {
		for _, w := range c.Widgets {
			origins = append(origins, models.WidgetOrigin{
				Widget:       w,
				CategoryID:   c.ID,
				CategoryName: c.Name,
			})
		}
	}
	return origins
}

// appendWidget returns a fresh slice; the old backing array is never written.
func appendWidget(widgets []models.Widget, w models.Widget) []models.Widget {
	next := make([]models.Widget, 0, len(widgets)+1)
	next = append(next, widgets...)
	return append(next, w)
}

// withWidgets copies the category list and swaps in a new widget slice for
// the category at idx. All other categories are copied as-is.
func withWidgets(d models.Dashboard, idx int, widgets []models.Widget) models.Dashboard {
	categories := make([]models.Category, len(d.Categories))
	copy(categories, d.Categories)
	categories[idx].Widgets = widgets
	return models.Dashboard{Categories: categories}
}
