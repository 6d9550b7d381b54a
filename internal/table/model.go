// Package table is a generic, sortable, optionally selectable table widget
// for Bubble Tea programs.
//
// The model owns two pieces of state: the sort configuration and the
// selection set. Everything else it shows is derived from the row collection
// and those two values on every render.
package table

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderState is what the table currently shows.
type RenderState int

const (
	StateLoading RenderState = iota
	StateEmpty
	StatePopulated
)

func (s RenderState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	default:
		return "populated"
	}
}

// Config configures a table. Data and Columns are required.
type Config[T any] struct {
	Data       []*T
	Columns    []Column
	Loading    bool
	Selectable bool
	// OnRowSelect receives the complete selection after every change.
	OnRowSelect func(selected []*T)

	// KeyMap and Styles default to DefaultKeyMap and DefaultStyles when
	// left zero.
	KeyMap *KeyMap
	Styles *Styles
}

// Model is the table state.
type Model[T any] struct {
	data        []*T
	columns     []Column
	loading     bool
	selectable  bool
	onRowSelect func([]*T)

	sort      SortConfig
	selection []*T

	// order caches ResolveOrder(data, sort).
	order      []*T
	orderValid bool

	cursor       int
	offset       int
	activeColumn int

	width  int
	height int

	keys    KeyMap
	styles  Styles
	spinner spinner.Model
}

// New creates a table with no sort and an empty selection.
func New[T any](cfg Config[T]) *Model[T] {
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SortGlyph

	return &Model[T]{
		data:        cfg.Data,
		columns:     append([]Column(nil), cfg.Columns...),
		loading:     cfg.Loading,
		selectable:  cfg.Selectable,
		onRowSelect: cfg.OnRowSelect,
		keys:        keys,
		styles:      styles,
		spinner:     s,
	}
}

// Init starts the loading spinner.
func (m *Model[T]) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetData replaces the row collection. The selection is left as is; rows
// that are no longer present stay selected until toggled.
func (m *Model[T]) SetData(rows []*T) {
	m.data = rows
	m.orderValid = false
	m.clampCursor()
}

// SetLoading sets the loading flag. Turning it on restarts the spinner.
func (m *Model[T]) SetLoading(loading bool) tea.Cmd {
	was := m.loading
	m.loading = loading
	if loading && !was {
		return m.spinner.Tick
	}
	return nil
}

// SetSelectable shows or hides the selection controls.
func (m *Model[T]) SetSelectable(selectable bool) {
	m.selectable = selectable
}

// SetOnRowSelect replaces the selection callback.
func (m *Model[T]) SetOnRowSelect(fn func([]*T)) {
	m.onRowSelect = fn
}

// SetSize sets the space available to the table. Zero means unbounded.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampCursor()
}

// Data returns the row collection as supplied.
func (m *Model[T]) Data() []*T { return m.data }

// Columns returns the column descriptors in display order.
func (m *Model[T]) Columns() []Column { return m.columns }

// Loading reports the loading flag.
func (m *Model[T]) Loading() bool { return m.loading }

// Selectable reports whether selection controls are shown.
func (m *Model[T]) Selectable() bool { return m.selectable }

// Sort returns the current sort configuration.
func (m *Model[T]) Sort() SortConfig { return m.sort }

// KeyMap returns the table keybindings.
func (m *Model[T]) KeyMap() KeyMap { return m.keys }

// Selected returns a copy of the selection in insertion order.
func (m *Model[T]) Selected() []*T {
	return append([]*T(nil), m.selection...)
}

// IsSelected reports whether row is selected.
func (m *Model[T]) IsSelected(row *T) bool {
	return IsSelected(m.selection, row)
}

// State derives the render state. Loading takes precedence over empty.
func (m *Model[T]) State() RenderState {
	switch {
	case m.loading:
		return StateLoading
	case len(m.data) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// Rows returns the rows in display order. The result is recomputed only after
// the data or the sort changes.
func (m *Model[T]) Rows() []*T {
	if !m.orderValid {
		m.order = ResolveOrder(m.data, m.sort)
		m.orderValid = true
	}
	return m.order
}

// HandleSort applies a header activation for key. The cursor stays on the row
// it was on.
func (m *Model[T]) HandleSort(key string) {
	current := m.CursorRow()

	m.sort = NextSort(m.sort, key)
	m.orderValid = false
	for i, c := range m.columns {
		if c.Key == key {
			m.activeColumn = i
			break
		}
	}

	if current != nil {
		for i, r := range m.Rows() {
			if r == current {
				m.cursor = i
				break
			}
		}
	}
	m.scrollToCursor()
}

// ToggleRow flips row's membership in the selection and reports the new
// selection to the owner. It does nothing when the table is not selectable.
func (m *Model[T]) ToggleRow(row *T) {
	if !m.selectable || row == nil {
		return
	}
	m.selection = ToggleRow(m.selection, row)
	if m.onRowSelect != nil {
		m.onRowSelect(m.Selected())
	}
}

// CursorRow returns the row under the cursor, or nil when there are no rows.
func (m *Model[T]) CursorRow() *T {
	rows := m.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor]
}

// Cursor returns the cursor position in display order.
func (m *Model[T]) Cursor() int { return m.cursor }

// ActiveColumn returns the focused column index.
func (m *Model[T]) ActiveColumn() int { return m.activeColumn }

// Update handles keys, mouse events and spinner ticks.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if m.State() != StatePopulated {
			return nil
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		if m.State() != StatePopulated {
			return nil
		}
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.HandleClick(msg.X, msg.Y)
		case msg.Button == tea.MouseButtonWheelUp:
			m.MoveUp()
		case msg.Button == tea.MouseButtonWheelDown:
			m.MoveDown()
		}
	}
	return nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.MoveDown()
	case key.Matches(msg, m.keys.Top):
		m.JumpToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.JumpToBottom()
	case key.Matches(msg, m.keys.NextColumn):
		m.NextColumn()
	case key.Matches(msg, m.keys.PrevColumn):
		m.PrevColumn()
	case key.Matches(msg, m.keys.Sort):
		if len(m.columns) > 0 {
			m.HandleSort(m.columns[m.activeColumn].Key)
		}
	case key.Matches(msg, m.keys.Toggle):
		m.ToggleRow(m.CursorRow())
	}
}

// HandleClick handles a left click at (x, y) relative to the table's top-left
// corner. Header cells sort, checkbox cells toggle, other body cells move the
// cursor.
func (m *Model[T]) HandleClick(x, y int) {
	if m.State() != StatePopulated || x < 0 || y < 0 {
		return
	}

	l := m.layout()
	switch {
	case y == 0:
		col := l.columnAt(x)
		if col >= 0 {
			m.HandleSort(m.columns[col].Key)
		}
	case y >= bodyTop:
		idx := m.offset + y - bodyTop
		rows := m.Rows()
		if idx >= len(rows) || y-bodyTop >= m.visibleRows() {
			return
		}
		m.cursor = idx
		if m.selectable && x < l.checkboxWidth {
			m.ToggleRow(rows[idx])
			return
		}
		if col := l.columnAt(x); col >= 0 {
			m.activeColumn = col
		}
	}
}

// NextColumn moves column focus right.
func (m *Model[T]) NextColumn() {
	if len(m.columns) == 0 {
		return
	}
	m.activeColumn = (m.activeColumn + 1) % len(m.columns)
}

// PrevColumn moves column focus left.
func (m *Model[T]) PrevColumn() {
	if len(m.columns) == 0 {
		return
	}
	m.activeColumn--
	if m.activeColumn < 0 {
		m.activeColumn = len(m.columns) - 1
	}
}

// MoveDown moves the cursor down.
func (m *Model[T]) MoveDown() {
	if m.cursor < len(m.data)-1 {
		m.cursor++
		m.scrollToCursor()
	}
}

// MoveUp moves the cursor up.
func (m *Model[T]) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.scrollToCursor()
	}
}

// JumpToTop jumps to the first row.
func (m *Model[T]) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last row.
func (m *Model[T]) JumpToBottom() {
	if len(m.data) > 0 {
		m.cursor = len(m.data) - 1
		m.scrollToCursor()
	}
}

func (m *Model[T]) clampCursor() {
	if len(m.data) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.data) {
		m.cursor = len(m.data) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.columns) > 0 && m.activeColumn >= len(m.columns) {
		m.activeColumn = len(m.columns) - 1
	}
	m.scrollToCursor()
}

func (m *Model[T]) scrollToCursor() {
	vh := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleRows is the number of body rows that fit in the height.
func (m *Model[T]) visibleRows() int {
	if m.height <= 0 {
		return max(len(m.data), 1)
	}
	return max(m.height-bodyTop, 1)
}
