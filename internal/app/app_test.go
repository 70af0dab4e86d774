package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/dashboard"
	"github.com/thenoetrevino/tablero/internal/services/widget"
)

const testLayout = `categories:
  - id: ops
    name: Operations
    widgets:
      - id: widget-10
        name: Uptime
        text: 99.9%
`

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew_Seed(t *testing.T) {
	a, err := New(config.Default(), Options{})
	require.NoError(t, err)

	d := a.WidgetService.Snapshot()
	assert.Len(t, d.Categories, 3)
	assert.Equal(t, 6, d.WidgetCount())
	assert.Equal(t, d, a.Store().Snapshot())

	w, err := a.WidgetService.AddWidget(widget.AddWidgetRequest{CategoryID: dashboard.CategoryCSPM, Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "widget-7", string(w.ID))
}

func TestNew_LayoutFromOptions(t *testing.T) {
	a, err := New(config.Default(), Options{LayoutFile: writeLayout(t, testLayout)})
	require.NoError(t, err)

	d := a.WidgetService.Snapshot()
	require.Len(t, d.Categories, 1)
	assert.Equal(t, "Operations", d.Categories[0].Name)

	w, err := a.WidgetService.AddWidget(widget.AddWidgetRequest{CategoryID: "ops", Name: "Latency"})
	require.NoError(t, err)
	assert.Equal(t, "widget-11", string(w.ID))
}

func TestNew_LayoutFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Dashboard.LayoutFile = writeLayout(t, testLayout)

	a, err := New(cfg, Options{})
	require.NoError(t, err)
	assert.Equal(t, "ops", string(a.WidgetService.Snapshot().Categories[0].ID))
}

func TestNew_OptionsOverrideConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Dashboard.IDStrategy = dashboard.StrategyUUID

	a, err := New(cfg, Options{IDStrategy: dashboard.StrategySequence})
	require.NoError(t, err)

	w, err := a.WidgetService.AddWidget(widget.AddWidgetRequest{CategoryID: dashboard.CategoryCWPP, Name: "New"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(w.ID), "widget-"))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(config.Default(), Options{IDStrategy: "timestamp"})
	assert.ErrorIs(t, err, dashboard.ErrUnknownIDStrategy)

	_, err = New(config.Default(), Options{LayoutFile: writeLayout(t, "categories: []\n")})
	assert.ErrorIs(t, err, dashboard.ErrNoCategories)

	_, err = New(config.Default(), Options{LayoutFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
