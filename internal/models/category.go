package models

import "github.com/thenoetrevino/tablero/internal/types"

// Category is a fixed, named group of widgets (e.g., "CWPP Dashboard").
// Widgets are kept in insertion order.
type Category struct {
	ID      types.CategoryID `yaml:"id"`
	Name    string           `yaml:"name"`
	Widgets []Widget         `yaml:"widgets"`
}

// HasWidget reports whether a widget with the given id is in the category
func (c Category) HasWidget(id types.WidgetID) bool {
	return c.IndexOf(id) >= 0
}

// IndexOf returns the position of the widget with the given id, or -1
func (c Category) IndexOf(id types.WidgetID) int {
	for i, w := range c.Widgets {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// WidgetIDs returns the set of widget ids currently in the category
func (c Category) WidgetIDs() map[types.WidgetID]bool {
	ids := make(map[types.WidgetID]bool, len(c.Widgets))
	for _, w := range c.Widgets {
		ids[w.ID] = true
	}
	return ids
}
