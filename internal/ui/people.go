package ui

import (
	"fmt"
	"strings"

	"datagrid/internal/model"
	"datagrid/internal/table"
	"datagrid/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var peopleColumns = []table.Column{
	{Key: "Name", Header: "Name", Width: 20},
	{Key: "Age", Header: "Age"},
	{Key: "Email", Header: "Email", Width: 28},
	{Key: "Joined", Header: "Joined"},
}

// PeopleModel is the people screen: the table plus a status bar.
type PeopleModel struct {
	table *table.Model[model.Person]
	rows  []*model.Person

	// selected mirrors what the table last reported through OnRowSelect.
	selected []*model.Person
	changes  int
}

// NewPeopleModel creates the screen in the loading state.
func NewPeopleModel(selectable bool) *PeopleModel {
	m := &PeopleModel{}
	m.table = table.New(table.Config[model.Person]{
		Columns:    peopleColumns,
		Loading:    true,
		Selectable: selectable,
		OnRowSelect: func(rows []*model.Person) {
			m.selected = rows
			m.changes++
		},
	})
	return m
}

// Init starts the loading spinner.
func (m *PeopleModel) Init() tea.Cmd { return m.table.Init() }

// Table exposes the underlying table.
func (m *PeopleModel) Table() *table.Model[model.Person] { return m.table }

// Rows returns the rows in load order.
func (m *PeopleModel) Rows() []*model.Person { return m.rows }

// Selected returns the selection last reported by the table.
func (m *PeopleModel) Selected() []*model.Person { return m.selected }

// SetPeople merges freshly loaded people into the current rows. Rows whose
// ID is already known keep their pointer so the table's selection still
// refers to them. Selected rows that disappeared are toggled off, even while
// the checkboxes are hidden.
func (m *PeopleModel) SetPeople(people []model.Person) {
	m.rows = mergePeople(m.rows, people)

	present := make(map[*model.Person]bool, len(m.rows))
	for _, p := range m.rows {
		present[p] = true
	}
	selectable := m.table.Selectable()
	m.table.SetSelectable(true)
	for _, p := range m.table.Selected() {
		if !present[p] {
			m.table.ToggleRow(p)
		}
	}
	m.table.SetSelectable(selectable)

	m.table.SetData(m.rows)
	m.table.SetLoading(false)
}

func mergePeople(existing []*model.Person, fresh []model.Person) []*model.Person {
	byID := make(map[int64]*model.Person, len(existing))
	for _, p := range existing {
		byID[p.ID] = p
	}

	merged := make([]*model.Person, 0, len(fresh))
	for _, f := range fresh {
		if p, ok := byID[f.ID]; ok {
			*p = f
			merged = append(merged, p)
			continue
		}
		p := f
		merged = append(merged, &p)
	}
	return merged
}

// SetLoading switches the table's loading indicator.
func (m *PeopleModel) SetLoading(loading bool) tea.Cmd {
	return m.table.SetLoading(loading)
}

// Update forwards to the table.
func (m *PeopleModel) Update(msg tea.Msg) tea.Cmd {
	return m.table.Update(msg)
}

// TableMeta returns the table's column/sort/selection summary.
func (m *PeopleModel) TableMeta() string {
	return m.table.Meta()
}

// SelectionTSV renders the selected rows as tab separated values with a
// header line, in the table's current display order.
func (m *PeopleModel) SelectionTSV() string {
	if len(m.selected) == 0 {
		return ""
	}
	chosen := make(map[*model.Person]bool, len(m.selected))
	for _, p := range m.selected {
		chosen[p] = true
	}

	var b strings.Builder
	headers := make([]string, len(peopleColumns))
	for i, col := range peopleColumns {
		headers[i] = col.Header
	}
	b.WriteString(strings.Join(headers, "\t"))

	for _, row := range m.table.Rows() {
		if !chosen[row] {
			continue
		}
		cells := make([]string, len(peopleColumns))
		for i, col := range peopleColumns {
			cells[i] = table.CellText(row, col.Key)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, "\t"))
	}
	return b.String()
}

// View renders the table above a status bar.
func (m *PeopleModel) View(width, height int) string {
	status := m.renderStatus()
	m.table.SetSize(width, max(1, height-lipgloss.Height(status)))

	content := m.table.View()
	spacerHeight := max(0, height-lipgloss.Height(content)-lipgloss.Height(status))
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")

	return lipgloss.JoinVertical(lipgloss.Left, content, spacer, status)
}

func (m *PeopleModel) renderStatus() string {
	if m.table.State() != table.StatePopulated {
		return StatusBarStyle.Render(m.table.State().String())
	}

	parts := []string{
		util.Plural(len(m.rows), "person", "people"),
		fmt.Sprintf("row %d/%d", m.table.Cursor()+1, len(m.rows)),
	}
	if latest := latestJoin(m.rows); latest != nil {
		parts = append(parts, "last joined "+util.FormatSince(latest.Joined))
	}
	if meta := m.TableMeta(); meta != "" {
		parts = append(parts, meta)
	}
	status := strings.Join(parts, "  ·  ")
	if len(m.selected) > 0 {
		status += "  ·  " + SelectionStyle.Render(selectionSummary(m.selected))
	}
	return StatusBarStyle.Render(status)
}

func latestJoin(rows []*model.Person) *model.Person {
	var latest *model.Person
	for _, p := range rows {
		if p.Joined.IsZero() {
			continue
		}
		if latest == nil || p.Joined.After(latest.Joined) {
			latest = p
		}
	}
	return latest
}

func selectionSummary(rows []*model.Person) string {
	names := make([]string, 0, len(rows))
	for _, p := range rows {
		names = append(names, p.Name)
	}
	return util.TruncateString("selected: "+strings.Join(names, ", "), 48)
}
