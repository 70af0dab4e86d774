package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestSearch_BlankQueryIsIdentity(t *testing.T) {
	d := Seed()
	for _, q := range []string{"", " ", "\t\n"} {
		got := Search(d, q)
		require.Len(t, got, len(d.Categories))
		assert.True(t, &got[0] == &d.Categories[0], "query %q should return the category list itself", q)
	}
}

func TestSearch_NamespaceScenario(t *testing.T) {
	got := Search(Seed(), "namespace")

	require.Len(t, got, 1)
	assert.Equal(t, "CWPP Dashboard", got[0].Name)
	require.Len(t, got[0].Widgets, 1)
	assert.Equal(t, "Top 5 Namespace Specific Alerts", got[0].Widgets[0].Name)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Search(Seed(), "zzz-no-match"))
}

func TestSearch_MatchesTextCaseInsensitively(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"ALERTS", []string{"cspm/widget-2", "cwpp/widget-3", "cwpp/widget-4"}},
		{"aws", []string{"cspm/widget-1"}},
		{"542", []string{"registry/widget-5", "registry/widget-6"}},
		{"Scan coverage", []string{"registry/widget-6"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, c := range Search(Seed(), tt.query) {
				for _, w := range c.Widgets {
					got = append(got, string(c.ID)+"/"+string(w.ID))
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_ResultProperties(t *testing.T) {
	queries := []string{"a", "image", "Risk", "total", "(2)", " alerts", "e", "cloud account"}
	d := Seed()

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			needle := strings.ToLower(q)
			for _, c := range Search(d, q) {
				assert.NotEmpty(t, c.Widgets, "category %q returned without widgets", c.ID)
				for _, w := range c.Widgets {
					hit := strings.Contains(strings.ToLower(w.Name), needle) ||
						strings.Contains(strings.ToLower(w.Text), needle)
					assert.True(t, hit, "widget %q does not match %q", w.Name, q)
				}
			}
		})
	}
}

func TestSearch_IsPure(t *testing.T) {
	d := Seed()
	assert.Equal(t, Search(d, "image"), Search(d, "image"))
	assert.Equal(t, Seed(), d, "search must not modify the dashboard")
}

func TestSearch_KeepsCategoryOrder(t *testing.T) {
	got := Search(Seed(), "assessment")

	require.Len(t, got, 2)
	assert.Equal(t, []string{"CSPM Executive Dashboard", "Registry Scan"}, []string{got[0].Name, got[1].Name})
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		query  string
		want   string
		wantOK bool
	}{
		{"namespce", "namespace", true},
		{"Workld", "workload", true},
		{"imags", "image", true},
		{"zzz-no-match", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := Suggest(Seed(), tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest_EmptyDashboard(t *testing.T) {
	_, ok := Suggest(models.Dashboard{}, "anything")
	assert.False(t, ok)
}
