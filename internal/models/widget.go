package models

import "github.com/thenoetrevino/tablero/internal/types"

// DefaultWidgetText is shown when a widget is created without a description
const DefaultWidgetText = "No description provided."

// Widget is a small named text card on the dashboard.
// Widgets are plain values: adding or removing one replaces collection
// membership, the fields themselves are never edited after creation.
type Widget struct {
	ID   types.WidgetID `yaml:"id"`
	Name string         `yaml:"name"`
	Text string         `yaml:"text"`
}

// WidgetOrigin pairs a widget with the category it was found in.
// It is one row of the flattened list shown by the manage panel.
type WidgetOrigin struct {
	Widget       Widget
	CategoryID   types.CategoryID
	CategoryName string
}
