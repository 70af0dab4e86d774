package widget

import "errors"

// Widget-related errors.
// The dashboard operations themselves never fail; these explain why a call
// left the dashboard unchanged.
var (
	// Validation errors
	ErrEmptyName = errors.New("widget name cannot be empty")

	// Lookup errors
	ErrCategoryNotFound = errors.New("category not found")
	ErrWidgetNotFound   = errors.New("widget not found in category")

	// Business logic errors
	ErrDuplicateWidget = errors.New("widget is already in category")
)
