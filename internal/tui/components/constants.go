package components

const (
	WidgetCardHeight     = 5  // WidgetCardHeight is the fixed height of a widget card
	PlaceholderHeight    = 3  // "+ Add Widget" card: border + label
	categoryContentWidth = 40 // content width of a category column
	widgetCardWidth      = 36 // width of a widget card inside a category
	widgetNameMaxLength  = 30 // Maximum display length for widget name before truncation
	widgetTextMaxLength  = 32 // Maximum display length for the widget text preview
	categoryOverhead     = 5  // borders + header + top and bottom indicators

	// AddWidgetLabel is the text of the placeholder card ending every category
	AddWidgetLabel = "+ Add Widget"

	// Dialog footer/help text strings
	FooterManage    = "space: toggle  h/l: category  enter/esc: done"
	FooterAddWidget = "enter: next  ctrl+s: save  esc: cancel"
	FooterDetail    = "esc: close"
)
