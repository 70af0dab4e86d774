package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DetailProps holds the widget text shown in the detail overlay
type DetailProps struct {
	Text  string
	Width int

	// Style is a glamour standard style name ("dark", "light", "notty", ...)
	Style string
}

type rendererKey struct {
	width int
	style string
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var (
	rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width and style
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: style}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderDetail renders widget text as markdown.
// Falls back to the raw text if glamour cannot render it.
func RenderDetail(props DetailProps) string {
	if strings.TrimSpace(props.Text) == "" {
		return EmptyStateStyle.Render("No description provided.")
	}

	renderer, err := getRenderer(max(props.Width, 10), props.Style)
	if err == nil {
		rendered, err := renderer.Render(props.Text)
		if err == nil {
			return strings.Trim(rendered, "\n")
		}
	}
	return props.Text
}
