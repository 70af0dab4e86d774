package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/dashboard"
	"github.com/thenoetrevino/tablero/internal/services/widget"
)

// setupTestModel creates a model on a fresh seeded store, sized to fit every category
func setupTestModel(t *testing.T) Model {
	t.Helper()

	seed := dashboard.Seed()
	store := dashboard.NewStore(seed)
	svc := widget.NewService(store, dashboard.SequenceAfter(seed))

	m := InitialModel(svc, config.Default())
	t.Cleanup(m.Close)

	return updateModel(m, tea.WindowSizeMsg{Width: 160, Height: 48})
}

// updateModel updates the model with a message and returns the updated model
func updateModel(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// sendKeys sends multiple key presses to a model sequentially
func sendKeys(m Model, keys ...tea.Msg) Model {
	for _, k := range keys {
		m = updateModel(m, k)
	}
	return m
}

// typeString types a string into a model character by character
func typeString(m Model, s string) Model {
	for _, r := range s {
		m = updateModel(m, keyRune(r))
	}
	return m
}

func keyRune(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func keyCode(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func keySpace() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
}

func keyCtrl(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}
