// Package board holds the read-only commands that print a dashboard
// without starting the terminal UI.
package board

import (
	"fmt"
	"io"

	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

type widgetJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
}

type categoryJSON struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Widgets []widgetJSON `json:"widgets"`
}

func toJSON(categories []models.Category) []categoryJSON {
	out := make([]categoryJSON, len(categories))
	for i, c := range categories {
		widgets := make([]widgetJSON, len(c.Widgets))
		for j, w := range c.Widgets {
			widgets[j] = widgetJSON{ID: string(w.ID), Name: w.Name, Text: w.Text}
		}
		out[i] = categoryJSON{ID: string(c.ID), Name: c.Name, Widgets: widgets}
	}
	return out
}

// printIDs writes one widget id per line, once per category it appears in
func printIDs(w io.Writer, categories []models.Category) error {
	for _, c := range categories {
		for _, widget := range c.Widgets {
			if _, err := fmt.Fprintln(w, widget.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// printCategories writes the human-readable board
func printCategories(w io.Writer, categories []models.Category) error {
	for i, c := range categories {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, styles.RenderCategoryHeading(c)); err != nil {
			return err
		}
		if len(c.Widgets) == 0 {
			if _, err := fmt.Fprintln(w, "  "+styles.SubtitleStyle.Render("No widgets")); err != nil {
				return err
			}
		}
		for _, widget := range c.Widgets {
			if _, err := fmt.Fprintln(w, styles.RenderWidgetLine(widget)); err != nil {
				return err
			}
		}
	}
	return nil
}
