package table

import (
	"fmt"
	"strings"

	"datagrid/internal/util"

	"github.com/charmbracelet/lipgloss"
)

const (
	// bodyTop is the first body line: header, divider, then rows.
	bodyTop = 2

	cellPadding   = 2
	checkboxWidth = 5

	loadingText = "Loading..."
	emptyText   = "No data available"
)

type layout struct {
	checkboxWidth int
	widths        []int
}

// columnAt returns the column under x, or -1.
func (l layout) columnAt(x int) int {
	pos := l.checkboxWidth
	if x < pos {
		return -1
	}
	for i, w := range l.widths {
		if x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}

func (m *Model[T]) layout() layout {
	l := layout{widths: make([]int, len(m.columns))}
	if m.selectable {
		l.checkboxWidth = checkboxWidth
	}

	rows := m.Rows()
	total := l.checkboxWidth
	for i, c := range m.columns {
		// Room for the sort glyph so headers don't shift when sorting.
		w := util.DisplayWidth(c.Header) + 2
		if c.Width > 0 {
			w = max(w, c.Width)
		} else {
			for _, r := range rows {
				w = max(w, util.DisplayWidth(cellText(r, c.Key)))
			}
			w = min(w, maxAutoWidth)
		}
		l.widths[i] = w + cellPadding
		total += l.widths[i]
	}

	if n := len(l.widths); n > 0 && m.width > total {
		l.widths[n-1] += m.width - total
	}
	return l
}

// View renders the table for its current render state.
func (m *Model[T]) View() string {
	switch m.State() {
	case StateLoading:
		return m.styles.Indicator.Render(m.spinner.View() + " " + loadingText)
	case StateEmpty:
		return m.styles.Empty.Render(emptyText)
	}

	l := m.layout()
	lines := []string{m.renderHeader(l), m.renderDivider(l)}

	rows := m.Rows()
	end := min(len(rows), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(l, i, rows[i]))
	}
	return strings.Join(lines, "\n")
}

func (m *Model[T]) renderHeader(l layout) string {
	cells := make([]string, 0, len(m.columns)+1)
	if l.checkboxWidth > 0 {
		cells = append(cells, m.styles.Header.Width(l.checkboxWidth).Render(""))
	}
	for i, c := range m.columns {
		style := m.styles.Header
		if i == m.activeColumn {
			style = m.styles.ActiveHeader
		}
		label := util.TruncateString(c.Header, l.widths[i]-cellPadding-2)
		if m.sort.Active() && m.sort.Key == c.Key {
			label += " " + m.styles.SortGlyph.Render(m.sort.Direction.Glyph())
		}
		cells = append(cells, style.Width(l.widths[i]).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model[T]) renderDivider(l layout) string {
	total := l.checkboxWidth
	for _, w := range l.widths {
		total += w
	}
	return m.styles.Divider.Render(strings.Repeat("─", total))
}

func (m *Model[T]) renderRow(l layout, idx int, row *T) string {
	selected := m.selectable && m.IsSelected(row)
	style := m.styles.Cell
	switch {
	case selected && idx == m.cursor:
		style = m.styles.SelectedCursor
	case selected:
		style = m.styles.Selected
	case idx == m.cursor:
		style = m.styles.Cursor
	}

	cells := make([]string, 0, len(m.columns)+1)
	if l.checkboxWidth > 0 {
		box := "[ ]"
		if selected {
			box = "[x]"
		}
		cells = append(cells, style.Width(l.checkboxWidth).Render(box))
	}
	for i, c := range m.columns {
		text := util.TruncateString(cellText(row, c.Key), l.widths[i]-cellPadding)
		cells = append(cells, style.Width(l.widths[i]).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Meta summarizes focus, sort and selection for a status bar.
func (m *Model[T]) Meta() string {
	var parts []string
	if len(m.columns) > 0 {
		parts = append(parts, fmt.Sprintf("col %s", strings.ToUpper(m.columns[m.activeColumn].Header)))
	}
	if m.sort.Active() {
		parts = append(parts, fmt.Sprintf("sort %s %s", strings.ToUpper(m.sort.Key), m.sort.Direction))
	}
	if m.selectable {
		parts = append(parts, fmt.Sprintf("%s selected", util.FormatCount(len(m.selection))))
	}
	return strings.Join(parts, "  ·  ")
}
