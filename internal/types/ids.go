package types

// ID type aliases give the dashboard's string identifiers semantic meaning,
// so a category id is never passed where a widget id is expected.

// CategoryID identifies one of the fixed dashboard categories (e.g. "cspm")
type CategoryID string

// WidgetID identifies a widget card. Unique within a category, but the same
// widget may be listed in several categories.
type WidgetID string
