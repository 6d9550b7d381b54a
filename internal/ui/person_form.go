package ui

import (
	"database/sql"
	"errors"
	"strings"

	"datagrid/internal/db"
	"datagrid/internal/input"
	"datagrid/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldAge
	fieldEmail
)

// FieldStyle is the look shared by every form field.
type FieldStyle struct {
	Variant input.Variant
	Size    input.Size
}

// PersonFormModel is the add-person form.
type PersonFormModel struct {
	db           *sql.DB
	keys         FormKeyMap
	fields       []*input.Field
	focusedField int
	submitting   bool
}

// NewPersonFormModel creates an empty form with the name field focused.
func NewPersonFormModel(database *sql.DB, keys FormKeyMap, style FieldStyle) *PersonFormModel {
	m := &PersonFormModel{db: database, keys: keys}

	// Editing a field clears its error.
	clearOnChange := func(idx int) func(string) {
		return func(string) { m.fields[idx].SetError("") }
	}

	m.fields = []*input.Field{
		input.New(input.Config{
			Label:       "Name *",
			Placeholder: "Full name",
			HelperText:  "Shown in the Name column",
			Variant:     style.Variant,
			Size:        style.Size,
			CharLimit:   100,
			OnChange:    clearOnChange(fieldName),
		}),
		input.New(input.Config{
			Label:       "Age",
			Placeholder: "e.g. 30",
			HelperText:  "Leave blank if unknown",
			Variant:     style.Variant,
			Size:        style.Size,
			CharLimit:   3,
			OnChange:    clearOnChange(fieldAge),
		}),
		input.New(input.Config{
			Label:       "Email",
			Placeholder: "name@example.com",
			HelperText:  "Optional",
			Type:        "email",
			Variant:     style.Variant,
			Size:        style.Size,
			CharLimit:   200,
		}),
	}
	return m
}

// Init focuses the first field.
func (m *PersonFormModel) Init() tea.Cmd {
	return m.fields[m.focusedField].Focus()
}

// Update handles input.
func (m *PersonFormModel) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmds []tea.Cmd
		for _, f := range m.fields {
			cmds = append(cmds, f.Update(tick))
		}
		return tea.Batch(cmds...)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.fields[m.focusedField].Update(msg)
	}
	if m.submitting {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		return func() tea.Msg { return model.FormCancelledMsg{} }
	case key.Matches(keyMsg, m.keys.Save):
		return m.save()
	case key.Matches(keyMsg, m.keys.NextField):
		return m.focus(m.focusedField + 1)
	case key.Matches(keyMsg, m.keys.PrevField):
		return m.focus(m.focusedField - 1)
	}

	return m.fields[m.focusedField].Update(keyMsg)
}

func (m *PersonFormModel) focus(idx int) tea.Cmd {
	n := len(m.fields)
	m.fields[m.focusedField].Blur()
	m.focusedField = (idx%n + n) % n
	return m.fields[m.focusedField].Focus()
}

// Values reads the form into a NewPerson, marking invalid fields.
func (m *PersonFormModel) Values() (model.NewPerson, bool) {
	p := model.NewPerson{
		Name:  m.fields[fieldName].Value(),
		Email: m.fields[fieldEmail].Value(),
	}

	valid := true
	age, err := model.ParseAge(m.fields[fieldAge].Value())
	if err != nil {
		m.fields[fieldAge].SetError(capitalize(model.ErrInvalidAge.Error()))
		valid = false
	}
	p.Age = age

	if err := p.Validate(); errors.Is(err, model.ErrNameRequired) {
		m.fields[fieldName].SetError(capitalize(err.Error()))
		valid = false
	}
	return p, valid
}

func (m *PersonFormModel) save() tea.Cmd {
	p, ok := m.Values()
	if !ok {
		for i, f := range m.fields {
			if f.Invalid() {
				return m.focus(i)
			}
		}
		return nil
	}

	m.submitting = true
	for _, f := range m.fields {
		f.SetDisabled(true)
	}
	spin := m.fields[fieldName].SetLoading(true)

	database := m.db
	insert := func() tea.Msg {
		id, err := db.InsertPerson(database, p)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		saved, err := db.GetPerson(database, id)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.PersonSavedMsg{ID: id, After: saved}
	}
	return tea.Batch(spin, insert)
}

// Failed re-enables the form after a save error.
func (m *PersonFormModel) Failed() tea.Cmd {
	m.submitting = false
	for _, f := range m.fields {
		f.SetDisabled(false)
	}
	m.fields[fieldName].SetLoading(false)
	return m.fields[m.focusedField].Focus()
}

// View renders the form.
func (m *PersonFormModel) View(width, height int) string {
	parts := []string{LabelStyle.Render("Add person")}
	for _, f := range m.fields {
		parts = append(parts, f.View())
	}

	return PanelStyle.
		Width(max(20, width-4)).
		Height(max(1, height-4)).
		Render(strings.Join(parts, "\n\n"))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
