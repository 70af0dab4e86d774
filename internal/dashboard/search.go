package dashboard

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Search computes the derived view for a query.
//
// A blank query returns d.Categories itself. Otherwise each category keeps
// only widgets whose name or text contains the query (case-insensitive, the
// query is used as typed), and categories left without widgets are dropped.
func Search(d models.Dashboard, query string) []models.Category {
	if strings.TrimSpace(query) == "" {
		return d.Categories
	}

	needle := strings.ToLower(query)
	var result []models.Category
	for _, c := range d.Categories {
		var matched []models.Widget
		for _, w := range c.Widgets {
			if matches(w, needle) {
				matched = append(matched, w)
			}
		}
		if len(matched) > 0 {
			result = append(result, models.Category{
				ID:      c.ID,
				Name:    c.Name,
				Widgets: matched,
			})
		}
	}
	return result
}

func matches(w models.Widget, needle string) bool {
	return strings.Contains(strings.ToLower(w.Name), needle) ||
		strings.Contains(strings.ToLower(w.Text), needle)
}

// minSuggestionLength skips short tokens such as "5" or "of"
const minSuggestionLength = 3

// Suggest returns the word from the widget names and texts closest to query
// by edit distance, for a "did you mean" hint when a search finds nothing.
// Only words within a third of the query's length (at least one edit) are
// considered close enough.
func Suggest(d models.Dashboard, query string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return "", false
	}

	threshold := max(len([]rune(needle))/3, 1)
	best := ""
	bestDist := threshold + 1
	seen := make(map[string]bool)

	for _, c := range d.Categories {
		for _, w := range c.Widgets {
			for _, word := range words(w.Name + " " + w.Text) {
				if seen[word] || word == needle {
					continue
				}
				seen[word] = true

				dist := levenshtein.ComputeDistance(needle, word)
				if dist < bestDist {
					best, bestDist = word, dist
				}
			}
		}
	}

	return best, best != ""
}

func words(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minSuggestionLength {
			out = append(out, f)
		}
	}
	return out
}
