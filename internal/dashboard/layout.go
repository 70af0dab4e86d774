package dashboard

import (
	"fmt"
	"os"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadLayout reads a YAML layout file to use instead of the built-in seed.
// The file is only read at start-up; the session never writes it back.
//
//	categories:
//	  - id: cspm
//	    name: CSPM Executive Dashboard
//	    widgets:
//	      - id: widget-1
//	        name: Cloud Accounts
//	        text: "Total: 2 accounts connected."
func LoadLayout(path string) (models.Dashboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("read layout: %w", err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes and validates layout YAML
func ParseLayout(data []byte) (models.Dashboard, error) {
	var d models.Dashboard
	if err := yaml.Unmarshal(data, &d); err != nil {
		return models.Dashboard{}, fmt.Errorf("parse layout: %w", err)
	}
	if err := ValidateLayout(d); err != nil {
		return models.Dashboard{}, err
	}

	for i := range d.Categories {
		for j := range d.Categories[i].Widgets {
			if d.Categories[i].Widgets[j].Text == "" {
				d.Categories[i].Widgets[j].Text = models.DefaultWidgetText
			}
		}
	}
	return d, nil
}

// ValidateLayout checks the invariants the operations rely on: category ids
// are unique and non-empty, and widget ids are unique within each category.
func ValidateLayout(d models.Dashboard) error {
	if len(d.Categories) == 0 {
		return ErrNoCategories
	}

	categoryIDs := make(map[types.CategoryID]bool, len(d.Categories))
	for i, c := range d.Categories {
		if strings.TrimSpace(string(c.ID)) == "" {
			return fmt.Errorf("category %d: %w", i, ErrEmptyCategoryID)
		}
		if categoryIDs[c.ID] {
			return fmt.Errorf("category %q: %w", c.ID, ErrDuplicateCategory)
		}
		categoryIDs[c.ID] = true

		widgetIDs := make(map[types.WidgetID]bool, len(c.Widgets))
		for j, w := range c.Widgets {
			if strings.TrimSpace(string(w.ID)) == "" {
				return fmt.Errorf("category %q widget %d: %w", c.ID, j, ErrEmptyWidgetID)
			}
			if strings.TrimSpace(w.Name) == "" {
				return fmt.Errorf("category %q widget %q: %w", c.ID, w.ID, ErrEmptyWidgetName)
			}
			if widgetIDs[w.ID] {
				return fmt.Errorf("category %q widget %q: %w", c.ID, w.ID, ErrDuplicateWidgetID)
			}
			widgetIDs[w.ID] = true
		}
	}
	return nil
}
