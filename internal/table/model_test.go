package table

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func samplePeople() []*person {
	return []*person{
		{Name: "Bob", Age: 35},
		{Name: "Alice", Age: 28},
	}
}

func newSample(selectable bool) (*Model[person], []*person) {
	rows := samplePeople()
	m := New(Config[person]{
		Data:       rows,
		Columns:    []Column{{Key: "name", Header: "Name"}, {Key: "age", Header: "Age"}},
		Selectable: selectable,
	})
	return m, rows
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestRenderState(t *testing.T) {
	tests := []struct {
		name    string
		loading bool
		rows    []*person
		want    RenderState
	}{
		{"loading with rows", true, samplePeople(), StateLoading},
		{"loading without rows", true, nil, StateLoading},
		{"empty", false, nil, StateEmpty},
		{"empty slice", false, []*person{}, StateEmpty},
		{"populated", false, samplePeople(), StatePopulated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Config[person]{
				Data:    tt.rows,
				Columns: []Column{{Key: "Name", Header: "Name"}},
				Loading: tt.loading,
			})
			if got := m.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewLoadingDominates(t *testing.T) {
	m, _ := newSample(true)
	m.SetLoading(true)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Loading...") {
		t.Errorf("expected loading indicator, got %q", out)
	}
	for _, s := range []string{"Name", "Alice", "[ ]"} {
		if strings.Contains(out, s) {
			t.Errorf("loading view should not contain %q: %q", s, out)
		}
	}
}

func TestViewEmpty(t *testing.T) {
	m := New(Config[person]{Columns: []Column{{Key: "Name", Header: "Name"}}})
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "No data available") {
		t.Errorf("expected empty indicator, got %q", out)
	}
	if strings.Contains(out, "Name") {
		t.Errorf("empty view should not render headers: %q", out)
	}
}

func TestViewPopulated(t *testing.T) {
	m, _ := newSample(false)
	lines := plainLines(m.View())

	if len(lines) != bodyTop+2 {
		t.Fatalf("expected header, divider and 2 rows, got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[0], "Name") || !strings.Contains(lines[0], "Age") {
		t.Errorf("header missing labels: %q", lines[0])
	}
	if strings.ContainsAny(lines[0], "▲▼") {
		t.Errorf("no sort glyph expected before sorting: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Bob") || !strings.Contains(lines[3], "Alice") {
		t.Errorf("rows should keep owner order: %q / %q", lines[2], lines[3])
	}
	if strings.Contains(m.View(), "[ ]") {
		t.Error("checkboxes rendered on a non-selectable table")
	}
}

func TestViewSortGlyph(t *testing.T) {
	m, _ := newSample(false)

	m.HandleSort("name")
	lines := plainLines(m.View())
	if !strings.Contains(lines[0], "Name ▲") {
		t.Errorf("expected ascending glyph: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Alice") {
		t.Errorf("expected Alice first: %q", lines[2])
	}

	m.HandleSort("name")
	lines = plainLines(m.View())
	if !strings.Contains(lines[0], "Name ▼") {
		t.Errorf("expected descending glyph: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Bob") {
		t.Errorf("expected Bob first: %q", lines[2])
	}

	m.HandleSort("age")
	lines = plainLines(m.View())
	if !strings.Contains(lines[0], "Age ▲") || strings.Contains(lines[0], "Name ▼") {
		t.Errorf("glyph should move to Age: %q", lines[0])
	}
}

func TestViewCheckboxes(t *testing.T) {
	m, rows := newSample(true)
	m.ToggleRow(rows[1])

	lines := plainLines(m.View())
	if !strings.Contains(lines[2], "[ ]") || !strings.Contains(lines[2], "Bob") {
		t.Errorf("Bob should be unchecked: %q", lines[2])
	}
	if !strings.Contains(lines[3], "[x]") || !strings.Contains(lines[3], "Alice") {
		t.Errorf("Alice should be checked: %q", lines[3])
	}
}

func TestRowsMemoized(t *testing.T) {
	m, rows := newSample(false)
	m.HandleSort("name")

	first := m.Rows()
	second := m.Rows()
	if &first[0] != &second[0] {
		t.Error("Rows should reuse the cached order")
	}

	m.SetData(append([]*person{{Name: "Aaron", Age: 1}}, rows...))
	third := m.Rows()
	if &third[0] == &first[0] || third[0].Name != "Aaron" {
		t.Error("Rows should recompute after SetData")
	}
}

func TestKeyboardSort(t *testing.T) {
	m, _ := newSample(false)

	m.Update(keyPress("s"))
	if got := m.Sort(); got != (SortConfig{Key: "name", Direction: Ascending}) {
		t.Fatalf("after s: %+v", got)
	}

	m.Update(keyPress("tab"))
	m.Update(keyPress("enter"))
	if got := m.Sort(); got != (SortConfig{Key: "age", Direction: Ascending}) {
		t.Fatalf("after tab enter: %+v", got)
	}

	m.Update(keyPress("s"))
	if got := m.Sort(); got.Direction != Descending {
		t.Fatalf("second activation should flip to desc: %+v", got)
	}
}

func TestKeyboardToggle(t *testing.T) {
	m, rows := newSample(true)
	var got []*person
	m.SetOnRowSelect(func(sel []*person) { got = sel })

	m.Update(keyPress("down"))
	m.Update(keyPress("x"))
	if len(got) != 1 || got[0] != rows[1] {
		t.Fatalf("expected Alice selected, got %v", names(got))
	}
}

func TestKeysIgnoredWhenNotPopulated(t *testing.T) {
	m, _ := newSample(false)
	m.SetLoading(true)
	m.Update(keyPress("s"))
	if m.Sort().Active() {
		t.Error("sort should not change while loading")
	}
}

func TestCursorFollowsRowAcrossSort(t *testing.T) {
	m, rows := newSample(false)
	if m.CursorRow() != rows[0] {
		t.Fatal("cursor should start on the first row")
	}

	m.HandleSort("name")
	if m.CursorRow() != rows[0] {
		t.Errorf("cursor should stay on Bob, got %s", m.CursorRow().Name)
	}
	if m.Cursor() != 1 {
		t.Errorf("Bob is second by name, cursor = %d", m.Cursor())
	}
}

func TestMouseHeaderClickSorts(t *testing.T) {
	m, _ := newSample(true)

	// checkbox cell, then "Name" column.
	m.Update(click(checkboxWidth+1, 0))
	if got := m.Sort(); got != (SortConfig{Key: "name", Direction: Ascending}) {
		t.Fatalf("header click: %+v", got)
	}
	m.Update(click(checkboxWidth+1, 0))
	if m.Sort().Direction != Descending {
		t.Fatalf("second header click: %+v", m.Sort())
	}

	// Clicking the checkbox header does nothing.
	m.Update(click(0, 0))
	if m.Sort().Key != "name" {
		t.Fatalf("checkbox header changed sort: %+v", m.Sort())
	}
}

func TestMouseCheckboxClickToggles(t *testing.T) {
	m, rows := newSample(true)
	var calls int
	m.SetOnRowSelect(func([]*person) { calls++ })

	m.Update(click(1, bodyTop+1))
	if !m.IsSelected(rows[1]) {
		t.Fatal("checkbox click should select Alice")
	}

	m.Update(click(checkboxWidth+1, bodyTop))
	if m.IsSelected(rows[0]) {
		t.Error("clicking a data cell should not select")
	}
	if m.Cursor() != 0 {
		t.Errorf("clicking a row should move the cursor, got %d", m.Cursor())
	}
	if calls != 1 {
		t.Errorf("expected 1 callback, got %d", calls)
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	var rows []*person
	for i := 0; i < 20; i++ {
		rows = append(rows, &person{Name: string(rune('a' + i)), Age: i})
	}
	m := New(Config[person]{Data: rows, Columns: []Column{{Key: "Name", Header: "Name"}}})
	m.SetSize(0, bodyTop+5)

	m.JumpToBottom()
	lines := plainLines(m.View())
	if len(lines) != bodyTop+5 {
		t.Fatalf("expected %d lines, got %d", bodyTop+5, len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "t") {
		t.Errorf("last row should be visible: %q", lines[len(lines)-1])
	}

	m.JumpToTop()
	lines = plainLines(m.View())
	if !strings.Contains(lines[bodyTop], "a") {
		t.Errorf("first row should be visible: %q", lines[bodyTop])
	}
}

func TestSetLoadingRestartsSpinner(t *testing.T) {
	m, _ := newSample(false)
	if cmd := m.SetLoading(true); cmd == nil {
		t.Error("turning loading on should return a tick command")
	}
	if cmd := m.SetLoading(true); cmd != nil {
		t.Error("loading already on should not tick again")
	}
	if cmd := m.SetLoading(false); cmd != nil {
		t.Error("turning loading off should not tick")
	}
}

func TestMeta(t *testing.T) {
	m, rows := newSample(true)
	m.HandleSort("age")
	m.ToggleRow(rows[0])

	meta := m.Meta()
	for _, want := range []string{"col AGE", "sort AGE asc", "1 selected"} {
		if !strings.Contains(meta, want) {
			t.Errorf("Meta() = %q, missing %q", meta, want)
		}
	}
}
