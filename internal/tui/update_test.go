package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/dashboard"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/types"
)

func widgetIDs(c models.Category) []types.WidgetID {
	ids := make([]types.WidgetID, len(c.Widgets))
	for i, w := range c.Widgets {
		ids[i] = w.ID
	}
	return ids
}

func categoryOf(t *testing.T, m Model, id types.CategoryID) models.Category {
	t.Helper()
	c, ok := m.AppState.Dashboard().Category(id)
	if !ok {
		t.Fatalf("category %q not found", id)
	}
	return c
}

// TestInitialState ensures a session starts on the seed dashboard in normal mode.
func TestInitialState(t *testing.T) {
	m := setupTestModel(t)

	if got := len(m.AppState.Categories()); got != 3 {
		t.Errorf("categories = %d, want 3", got)
	}
	if got := m.AppState.TotalWidgetCount(); got != 6 {
		t.Errorf("widgets = %d, want 6", got)
	}
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode = %v, want NormalMode", m.UIState.Mode())
	}
	if m.UIState.SelectedCategory() != 0 || m.UIState.SelectedWidget() != 0 {
		t.Errorf("selection = (%d, %d), want (0, 0)", m.UIState.SelectedCategory(), m.UIState.SelectedWidget())
	}
}

// TestSessionsAreIndependent ensures two models never share a store.
func TestSessionsAreIndependent(t *testing.T) {
	a := setupTestModel(t)
	b := setupTestModel(t)

	a = sendKeys(a, keyRune('x'))

	if got := a.AppState.TotalWidgetCount(); got != 5 {
		t.Errorf("session a widgets = %d, want 5", got)
	}
	if got := b.AppState.TotalWidgetCount(); got != 6 {
		t.Errorf("session b widgets = %d, want 6", got)
	}
}

func TestSearch_FiltersWhileTyping(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'))
	if m.UIState.Mode() != state.SearchMode {
		t.Fatalf("Mode after / = %v, want SearchMode", m.UIState.Mode())
	}

	m = typeString(m, "namespace")
	if m.SearchState.Query != "namespace" {
		t.Errorf("Query = %q, want %q", m.SearchState.Query, "namespace")
	}

	visible := m.visibleCategories()
	if len(visible) != 1 {
		t.Fatalf("visible categories = %d, want 1", len(visible))
	}
	if visible[0].ID != dashboard.CategoryCWPP {
		t.Errorf("visible category = %q, want %q", visible[0].ID, dashboard.CategoryCWPP)
	}
	if ids := widgetIDs(visible[0]); len(ids) != 1 || ids[0] != "widget-3" {
		t.Errorf("visible widgets = %v, want [widget-3]", ids)
	}

	// The underlying dashboard is untouched
	if got := m.AppState.TotalWidgetCount(); got != 6 {
		t.Errorf("widgets = %d, want 6", got)
	}
}

func TestSearch_KeysAreTextWhileSearching(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'), keyRune('x'), keyRune('a'))

	if m.SearchState.Query != "xa" {
		t.Errorf("Query = %q, want %q", m.SearchState.Query, "xa")
	}
	if m.UIState.Mode() != state.SearchMode {
		t.Errorf("Mode = %v, want SearchMode", m.UIState.Mode())
	}
	if got := m.AppState.TotalWidgetCount(); got != 6 {
		t.Errorf("widgets = %d, want 6 (x must not remove while searching)", got)
	}
}

func TestSearch_EnterKeepsFilterEscClears(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'))
	m = typeString(m, "image")
	m = sendKeys(m, keyCode(tea.KeyEnter))

	if m.UIState.Mode() != state.NormalMode {
		t.Fatalf("Mode after enter = %v, want NormalMode", m.UIState.Mode())
	}
	if !m.SearchState.IsActive {
		t.Error("filter should be active after enter")
	}
	if got := len(m.visibleCategories()); got != 1 {
		t.Errorf("visible categories = %d, want 1", got)
	}

	m = sendKeys(m, keyCode(tea.KeyEscape))
	if m.SearchState.Query != "" {
		t.Errorf("Query after esc = %q, want empty", m.SearchState.Query)
	}
	if got := len(m.visibleCategories()); got != 3 {
		t.Errorf("visible categories after esc = %d, want 3", got)
	}
}

func TestSearch_Backspace(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'))
	m = typeString(m, "zzz")
	if got := len(m.visibleCategories()); got != 0 {
		t.Fatalf("visible categories = %d, want 0", got)
	}

	m = sendKeys(m, keyCode(tea.KeyBackspace), keyCode(tea.KeyBackspace), keyCode(tea.KeyBackspace))
	if m.SearchState.Query != "" {
		t.Errorf("Query = %q, want empty", m.SearchState.Query)
	}
	if got := len(m.visibleCategories()); got != 3 {
		t.Errorf("visible categories = %d, want 3", got)
	}
}

func TestSearch_CancelShowsEverything(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'))
	m = typeString(m, "cloud")
	m = sendKeys(m, keyCode(tea.KeyEscape))

	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode = %v, want NormalMode", m.UIState.Mode())
	}
	if m.SearchState.Query != "" {
		t.Errorf("Query = %q, want empty", m.SearchState.Query)
	}
	if got := len(m.visibleCategories()); got != 3 {
		t.Errorf("visible categories = %d, want 3", got)
	}
}

func TestAddWidget_SaveAppendsToSelectedCategory(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('l'), keyRune('l'), keyRune('a'))
	if m.UIState.Mode() != state.AddWidgetMode {
		t.Fatalf("Mode after a = %v, want AddWidgetMode", m.UIState.Mode())
	}
	if m.AddWidgetState.CategoryID() != dashboard.CategoryRegistry {
		t.Fatalf("CategoryID = %q, want %q", m.AddWidgetState.CategoryID(), dashboard.CategoryRegistry)
	}

	m.AddWidgetState.Draft.Name = "  Runtime Findings  "
	m = sendKeys(m, keyCtrl('s'))

	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode after save = %v, want NormalMode", m.UIState.Mode())
	}
	if m.AddWidgetState.IsOpen() || m.AddWidgetState.CategoryID() != "" {
		t.Error("add widget state should be cleared after save")
	}
	if m.AddWidgetState.Draft != (state.WidgetDraft{}) {
		t.Errorf("Draft = %+v, want empty", m.AddWidgetState.Draft)
	}

	registry := categoryOf(t, m, dashboard.CategoryRegistry)
	if len(registry.Widgets) != 3 {
		t.Fatalf("registry widgets = %d, want 3", len(registry.Widgets))
	}
	added := registry.Widgets[2]
	if added.ID != "widget-7" {
		t.Errorf("ID = %q, want widget-7", added.ID)
	}
	if added.Name != "  Runtime Findings  " {
		t.Errorf("Name = %q, want the draft name as typed", added.Name)
	}
	if added.Text != models.DefaultWidgetText {
		t.Errorf("Text = %q, want %q", added.Text, models.DefaultWidgetText)
	}

	if got := len(categoryOf(t, m, dashboard.CategoryCSPM).Widgets); got != 2 {
		t.Errorf("cspm widgets = %d, want 2", got)
	}
}

func TestAddWidget_KeepsDraftTextAsTyped(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		want  string
	}{
		{"empty uses placeholder", "", models.DefaultWidgetText},
		{"whitespace is kept", "   ", "   "},
		{"padded text is kept", " 3 findings ", " 3 findings "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestModel(t)

			m = sendKeys(m, keyRune('a'))
			m.AddWidgetState.Draft.Name = "Runtime Findings"
			m.AddWidgetState.Draft.Text = tt.draft
			m = sendKeys(m, keyCtrl('s'))

			cspm := categoryOf(t, m, dashboard.CategoryCSPM)
			if len(cspm.Widgets) != 3 {
				t.Fatalf("cspm widgets = %d, want 3", len(cspm.Widgets))
			}
			if got := cspm.Widgets[2].Text; got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearch_MatchesWidgetText(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('/'))
	m = typeString(m, "aws")

	categories := m.visibleCategories()
	if len(categories) != 1 || categories[0].ID != dashboard.CategoryCSPM {
		t.Fatalf("visible categories = %+v, want only cspm", categories)
	}
	if len(categories[0].Widgets) != 1 || categories[0].Widgets[0].ID != "widget-1" {
		t.Errorf("widgets = %+v, want only widget-1", categories[0].Widgets)
	}
}

func TestAddWidget_BlankNameIsRejected(t *testing.T) {
	tests := []struct {
		name  string
		draft string
	}{
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestModel(t)

			m = sendKeys(m, keyRune('a'))
			m.AddWidgetState.Draft.Name = tt.draft
			m.AddWidgetState.Draft.Text = "kept"
			m = sendKeys(m, keyCtrl('s'))

			if m.UIState.Mode() != state.AddWidgetMode {
				t.Errorf("Mode = %v, want AddWidgetMode", m.UIState.Mode())
			}
			if !m.NotificationState.HasAny() {
				t.Error("expected a warning notification")
			}
			if m.AddWidgetState.Draft.Text != "kept" {
				t.Errorf("Draft.Text = %q, want it kept", m.AddWidgetState.Draft.Text)
			}
			if got := m.AppState.TotalWidgetCount(); got != 6 {
				t.Errorf("widgets = %d, want 6", got)
			}
		})
	}
}

func TestAddWidget_EscCancels(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('a'))
	m.AddWidgetState.Draft.Name = "Draft"
	m = sendKeys(m, keyCode(tea.KeyEscape))

	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode = %v, want NormalMode", m.UIState.Mode())
	}
	if m.AddWidgetState.CategoryID() != "" {
		t.Errorf("CategoryID = %q, want empty", m.AddWidgetState.CategoryID())
	}
	if m.AddWidgetState.Draft.Name != "" {
		t.Errorf("Draft.Name = %q, want empty", m.AddWidgetState.Draft.Name)
	}
	if m.AddWidgetState.Form != nil {
		t.Error("Form should be discarded")
	}
	if got := m.AppState.TotalWidgetCount(); got != 6 {
		t.Errorf("widgets = %d, want 6", got)
	}
}

func TestAddWidget_EnterOnPlaceholderOpensDialog(t *testing.T) {
	m := setupTestModel(t)

	// Two widgets, then the placeholder
	m = sendKeys(m, keyRune('j'), keyRune('j'))
	if !m.isOnAddPlaceholder() {
		t.Fatalf("cursor should be on the placeholder, at %d", m.UIState.SelectedWidget())
	}

	m = sendKeys(m, keyCode(tea.KeyEnter))
	if m.UIState.Mode() != state.AddWidgetMode {
		t.Errorf("Mode = %v, want AddWidgetMode", m.UIState.Mode())
	}
	if m.AddWidgetState.CategoryID() != dashboard.CategoryCSPM {
		t.Errorf("CategoryID = %q, want %q", m.AddWidgetState.CategoryID(), dashboard.CategoryCSPM)
	}
}

func TestAddWidget_FormReceivesNonKeyMessages(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('a'))
	m = updateModel(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.UIState.Mode() != state.AddWidgetMode {
		t.Errorf("Mode = %v, want AddWidgetMode", m.UIState.Mode())
	}
	if m.UIState.Width() != 120 {
		t.Errorf("Width = %d, want 120", m.UIState.Width())
	}
}

func TestRemoveWidget(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('x'))

	cspm := categoryOf(t, m, dashboard.CategoryCSPM)
	if ids := widgetIDs(cspm); len(ids) != 1 || ids[0] != "widget-2" {
		t.Errorf("cspm widgets = %v, want [widget-2]", ids)
	}
	if got := m.AppState.TotalWidgetCount(); got != 5 {
		t.Errorf("widgets = %d, want 5", got)
	}
}

func TestRemoveWidget_LastWidgetClampsCursor(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('j'))
	m = sendKeys(m, keyRune('x'))

	if got := m.UIState.SelectedWidget(); got != 1 {
		t.Errorf("SelectedWidget = %d, want 1 (placeholder after one widget)", got)
	}

	m = sendKeys(m, keyRune('k'), keyRune('x'))
	if got := len(categoryOf(t, m, dashboard.CategoryCSPM).Widgets); got != 0 {
		t.Errorf("cspm widgets = %d, want 0", got)
	}
	if got := m.UIState.SelectedWidget(); got != 0 {
		t.Errorf("SelectedWidget = %d, want 0", got)
	}
}

func TestRemoveWidget_OnPlaceholderIsNoop(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('j'), keyRune('j'), keyRune('x'))

	if got := m.AppState.TotalWidgetCount(); got != 6 {
		t.Errorf("widgets = %d, want 6", got)
	}
	if !m.NotificationState.HasAny() {
		t.Error("expected an info notification")
	}
}

func TestManage_RowsReflectTabMembership(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('m'))
	if m.UIState.Mode() != state.ManageMode {
		t.Fatalf("Mode = %v, want ManageMode", m.UIState.Mode())
	}
	if m.ManageState.Tab() != 0 {
		t.Errorf("Tab = %d, want 0", m.ManageState.Tab())
	}

	rows := m.manageRows()
	if len(rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(rows))
	}
	want := []bool{true, true, false, false, false, false}
	for i, row := range rows {
		if row.Checked != want[i] {
			t.Errorf("rows[%d] (%s) Checked = %v, want %v", i, row.Name, row.Checked, want[i])
		}
	}
	if rows[2].Origin != "CWPP Dashboard" {
		t.Errorf("rows[2].Origin = %q, want %q", rows[2].Origin, "CWPP Dashboard")
	}
}

func TestManage_ToggleOnAndOff(t *testing.T) {
	m := setupTestModel(t)

	// widget-3 is the third row
	m = sendKeys(m, keyRune('m'), keyRune('j'), keyRune('j'), keySpace())

	cspm := categoryOf(t, m, dashboard.CategoryCSPM)
	if ids := widgetIDs(cspm); len(ids) != 3 || ids[2] != "widget-3" {
		t.Fatalf("cspm widgets = %v, want [widget-1 widget-2 widget-3]", ids)
	}
	if m.UIState.Mode() != state.ManageMode {
		t.Errorf("Mode = %v, want ManageMode (toggle keeps the panel open)", m.UIState.Mode())
	}

	// The new cspm entry now sits at the cursor and is checked
	rows := m.manageRows()
	if len(rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(rows))
	}
	if !rows[m.ManageState.Cursor()].Checked {
		t.Error("row at cursor should be checked after toggling on")
	}

	m = sendKeys(m, keySpace())
	cspm = categoryOf(t, m, dashboard.CategoryCSPM)
	if ids := widgetIDs(cspm); len(ids) != 2 {
		t.Errorf("cspm widgets = %v, want 2 after toggling off", ids)
	}

	cwpp := categoryOf(t, m, dashboard.CategoryCWPP)
	if ids := widgetIDs(cwpp); len(ids) != 2 || ids[0] != "widget-3" {
		t.Errorf("cwpp widgets = %v, want widget-3 untouched", ids)
	}
}

func TestManage_TabSwitchTargetsOtherCategory(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('m'), keyRune('l'))
	if m.ManageState.Tab() != 1 {
		t.Fatalf("Tab = %d, want 1", m.ManageState.Tab())
	}

	// Row 0 is widget-1 from cspm
	m = sendKeys(m, keySpace())

	cwpp := categoryOf(t, m, dashboard.CategoryCWPP)
	if ids := widgetIDs(cwpp); len(ids) != 3 || ids[2] != "widget-1" {
		t.Errorf("cwpp widgets = %v, want widget-1 appended", ids)
	}
	if got := len(categoryOf(t, m, dashboard.CategoryCSPM).Widgets); got != 2 {
		t.Errorf("cspm widgets = %d, want 2", got)
	}
}

func TestManage_TabsWrap(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('m'), keyRune('h'))
	if m.ManageState.Tab() != 2 {
		t.Errorf("Tab = %d, want 2", m.ManageState.Tab())
	}
}

func TestManage_OpensOnSelectedCategoryTab(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('l'), keyRune('m'))
	if m.ManageState.Tab() != 1 {
		t.Errorf("Tab = %d, want 1", m.ManageState.Tab())
	}
}

func TestManage_DoneCloses(t *testing.T) {
	for _, k := range []tea.Msg{keyCode(tea.KeyEnter), keyCode(tea.KeyEscape)} {
		m := setupTestModel(t)

		m = sendKeys(m, keyRune('m'), k)
		if m.UIState.Mode() != state.NormalMode {
			t.Errorf("Mode after %v = %v, want NormalMode", k, m.UIState.Mode())
		}
		if m.ManageState.IsOpen() {
			t.Errorf("manage panel open after %v", k)
		}
	}
}

func TestDetail_OpenAndClose(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyCode(tea.KeyEnter))
	if m.UIState.Mode() != state.DetailMode {
		t.Fatalf("Mode = %v, want DetailMode", m.UIState.Mode())
	}
	if m.DetailState.Widget.ID != "widget-1" {
		t.Errorf("detail widget = %q, want widget-1", m.DetailState.Widget.ID)
	}
	if m.DetailState.CategoryName != "CSPM Executive Dashboard" {
		t.Errorf("CategoryName = %q", m.DetailState.CategoryName)
	}

	m = sendKeys(m, keyCode(tea.KeyEscape))
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode = %v, want NormalMode", m.UIState.Mode())
	}
}

func TestDetail_RemoveFromOverlay(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyCode(tea.KeyEnter), keyRune('x'))

	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode = %v, want NormalMode", m.UIState.Mode())
	}
	if got := m.AppState.TotalWidgetCount(); got != 5 {
		t.Errorf("widgets = %d, want 5", got)
	}
}

func TestHelp_AnyKeyCloses(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyRune('?'))
	if m.UIState.Mode() != state.HelpMode {
		t.Fatalf("Mode = %v, want HelpMode", m.UIState.Mode())
	}

	m = sendKeys(m, keyRune('z'))
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode = %v, want NormalMode", m.UIState.Mode())
	}
}

func TestNavigation_BoundsNotify(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want string
	}{
		{"first category", []tea.Msg{keyRune('h')}, "Already at the first category"},
		{"last category", []tea.Msg{keyRune('l'), keyRune('l'), keyRune('l')}, "Already at the last category"},
		{"first widget", []tea.Msg{keyRune('k')}, "Already at the first widget"},
		{"last row", []tea.Msg{keyRune('j'), keyRune('j'), keyRune('j')}, "Already at the last widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestModel(t)
			m = sendKeys(m, tt.keys...)

			all := m.NotificationState.All()
			if len(all) != 1 {
				t.Fatalf("notifications = %d, want 1", len(all))
			}
			if all[0].Message != tt.want {
				t.Errorf("Message = %q, want %q", all[0].Message, tt.want)
			}
		})
	}
}

func TestNavigation_MovesSelection(t *testing.T) {
	m := setupTestModel(t)

	m = sendKeys(m, keyCode(tea.KeyRight), keyCode(tea.KeyDown))
	if m.UIState.SelectedCategory() != 1 || m.UIState.SelectedWidget() != 1 {
		t.Errorf("selection = (%d, %d), want (1, 1)", m.UIState.SelectedCategory(), m.UIState.SelectedWidget())
	}

	w, ok := m.getCurrentWidget()
	if !ok || w.ID != "widget-4" {
		t.Errorf("current widget = %q, want widget-4", w.ID)
	}

	// Moving category resets the widget cursor
	m = sendKeys(m, keyCode(tea.KeyLeft))
	if m.UIState.SelectedWidget() != 0 {
		t.Errorf("SelectedWidget = %d, want 0", m.UIState.SelectedWidget())
	}
}

func TestQuit(t *testing.T) {
	m := setupTestModel(t)

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestSubscription_FollowsStore(t *testing.T) {
	m := setupTestModel(t)
	before := m.AppState.Updates()

	m = sendKeys(m, keyRune('x'))

	if got := m.AppState.Updates(); got != before+1 {
		t.Errorf("Updates = %d, want %d", got, before+1)
	}
	if got := m.Service.Snapshot().WidgetCount(); got != m.AppState.TotalWidgetCount() {
		t.Errorf("store widgets = %d, app state widgets = %d", got, m.AppState.TotalWidgetCount())
	}
}
