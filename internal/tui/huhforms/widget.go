package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

// ErrNameRequired is shown under the name field while it is blank
var ErrNameRequired = errors.New("widget name is required")

// ValidateWidgetName rejects empty and whitespace-only names
func ValidateWidgetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

// CreateAddWidgetForm creates a huh form for adding a widget to a category.
// The form uses pointers to update values in place.
func CreateAddWidgetForm(
	categoryName string,
	name *string,
	text *string,
	confirm *bool,
	textLines int,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("name").
			Title("Widget Name").
			Placeholder("Enter widget name...").
			Validate(ValidateWidgetName).
			Value(name),
	)

	fields = append(fields,
		huh.NewText().
			Key("text").
			Title("Widget Text").
			Placeholder("Enter widget text (markdown)...").
			CharLimit(2000).
			Lines(max(textLines, 3)).
			Value(text),
	)

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Add this widget to "+categoryName+"?").
			Affirmative("Add").
			Negative("Cancel").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(AddWidgetKeyMap()).WithShowHelp(false)
}
