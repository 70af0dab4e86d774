package models

import "github.com/thenoetrevino/tablero/internal/types"

// Dashboard is the root of the widget tree.
// The set of categories is fixed for the session; only their widget
// membership changes.
type Dashboard struct {
	Categories []Category `yaml:"categories"`
}

// CategoryIndex returns the position of the category with the given id, or -1
func (d Dashboard) CategoryIndex(id types.CategoryID) int {
	for i, c := range d.Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Category returns the category with the given id
func (d Dashboard) Category(id types.CategoryID) (Category, bool) {
	idx := d.CategoryIndex(id)
	if idx < 0 {
		return Category{}, false
	}
	return d.Categories[idx], true
}

// WidgetCount returns the total number of widget entries across all categories
func (d Dashboard) WidgetCount() int {
	total := 0
	for _, c := range d.Categories {
		total += len(c.Widgets)
	}
	return total
}
