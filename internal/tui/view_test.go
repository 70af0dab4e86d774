package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/dashboard"
	"github.com/thenoetrevino/tablero/internal/services/widget"
)

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	seed := dashboard.Seed()
	svc := widget.NewService(dashboard.NewStore(seed), dashboard.SequenceAfter(seed))
	m := InitialModel(svc, config.Default())
	defer m.Close()

	view := m.View()
	if view.Content != "Loading..." {
		t.Errorf("Content = %q, want Loading...", view.Content)
	}
	if !view.AltScreen {
		t.Error("AltScreen should be enabled")
	}
}

func TestView_BoardShowsSeed(t *testing.T) {
	m := setupTestModel(t)
	content := m.View().Content

	for _, want := range []string{
		"CSPM Executive Dashboard",
		"CWPP Dashboard",
		"Registry Scan",
		"Cloud Accounts",
		"Image Security Issues",
		"+ Add Widget",
		"6 widgets in 3 categories",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("board missing %q", want)
		}
	}
}

func TestView_NoResults(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'))
	m = typeString(m, "zzz")
	content := m.View().Content

	if !strings.Contains(content, `No results for "zzz"`) {
		t.Error(`view should contain No results for "zzz"`)
	}
	if strings.Contains(content, "Cloud Accounts") {
		t.Error("no widget should be rendered when nothing matches")
	}
}

func TestView_NoResultsSuggestsWidgetWord(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'))
	m = typeString(m, "workloda")
	content := m.View().Content

	if !strings.Contains(content, "Did you mean") {
		t.Error("view should contain a suggestion")
	}
}

func TestView_FilteredBoardHidesOtherCategories(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'))
	m = typeString(m, "image")
	m = sendKeys(m, keyCode(tea.KeyEnter))
	content := m.View().Content

	if !strings.Contains(content, "Registry Scan") {
		t.Error("filtered view should show Registry Scan")
	}
	if strings.Contains(content, "CWPP Dashboard") {
		t.Error("filtered view should hide CWPP Dashboard")
	}
	if !strings.Contains(content, `filter: "image"`) {
		t.Error("status bar should show the active filter")
	}
}

func TestView_Overlays(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want []string
	}{
		{"add widget", []tea.Msg{keyRune('l'), keyRune('l'), keyRune('a')}, []string{"Add Widget to Registry Scan", "ctrl+s: save"}},
		{"manage", []tea.Msg{keyRune('m')}, []string{"Manage Widgets", "[x]", "[ ]", "CWPP Dashboard (2)"}},
		{"detail", []tea.Msg{keyCode(tea.KeyEnter)}, []string{"Cloud Accounts", "widget-1", "esc: close"}},
		{"help", []tea.Msg{keyRune('?')}, []string{"Keyboard Shortcuts", "Manage widgets"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestModel(t)
			m = sendKeys(m, tt.keys...)
			content := m.View().Content

			for _, want := range tt.want {
				if !strings.Contains(content, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}

func TestView_NotificationIsRendered(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('h'))
	if !strings.Contains(m.View().Content, "Already at the first category") {
		t.Error("view should contain the bound notification")
	}
}
