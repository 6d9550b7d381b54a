package ui

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"datagrid/internal/db"
	"datagrid/internal/model"
	"datagrid/internal/util"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the root model.
type Options struct {
	Selectable bool
	FieldStyle FieldStyle
}

// Model is the root Bubble Tea model.
type Model struct {
	db     *sql.DB
	opts   Options
	screen model.Screen
	mode   model.Mode

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	people *PeopleModel
	form   *PersonFormModel

	keys      KeyMap
	formKeys  FormKeyMap
	undoStack []undoAction
	redoStack []undoAction
}

// New creates a new root model.
func New(database *sql.DB, opts Options) Model {
	return Model{
		db:       database,
		opts:     opts,
		screen:   model.ScreenPeople,
		mode:     model.ModeNav,
		people:   NewPeopleModel(opts.Selectable),
		keys:     DefaultKeyMap(),
		formKeys: DefaultFormKeyMap(),
	}
}

// Init starts the spinner and loads people.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.people.Init(), loadPeopleCmd(m.db))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.mode == model.ModeInsert {
			if m.form != nil {
				return m, m.form.Update(msg)
			}
			return m, nil
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}
		return m.handleNavMode(msg)

	case tea.MouseMsg:
		if m.mode != model.ModeNav || m.showingHelp {
			return m, nil
		}
		// The table is drawn at the top-left of the content area.
		msg.Y -= m.contentTop()
		if msg.Y < 0 {
			return m, nil
		}
		return m, m.people.Update(msg)

	case spinner.TickMsg:
		cmds := []tea.Cmd{m.people.Update(msg)}
		if m.form != nil {
			cmds = append(cmds, m.form.Update(msg))
		}
		return m, tea.Batch(cmds...)

	case model.ErrorMsg:
		log.Printf("error: %v", msg.Err)
		m.error = msg.Err.Error()
		var cmd tea.Cmd
		if m.form != nil {
			cmd = m.form.Failed()
		}
		m.people.SetLoading(false)
		return m, cmd

	case model.PeopleLoadedMsg:
		log.Printf("loaded %d people", len(msg.People))
		m.people.SetPeople(msg.People)
		m.error = ""
		return m, nil

	case model.PersonSavedMsg:
		log.Printf("added person %d", msg.ID)
		m.pushUndoAction(m.buildPersonSaveAction(msg))
		m.mode = model.ModeNav
		m.screen = model.ScreenPeople
		m.form = nil
		m.error = ""
		m.info = fmt.Sprintf("Added %s (u to undo)", msg.After.Name)
		return m, m.reload()

	case model.PeopleDeletedMsg:
		log.Printf("deleted %d people", len(msg.Deleted))
		m.pushUndoAction(m.buildDeleteAction(msg))
		m.info = fmt.Sprintf("Deleted %s (u to undo)", util.Plural(len(msg.Deleted), "person", "people"))
		return m, m.reload()

	case model.FormCancelledMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenPeople
		m.form = nil
		return m, nil

	case undoAppliedMsg:
		cmd := m.applyUndoResult(msg)
		return m, cmd

	case copiedMsg:
		m.info = fmt.Sprintf("Copied %s to clipboard", util.Plural(msg.rows, "row", "rows"))
		return m, nil
	}

	if m.mode == model.ModeInsert && m.form != nil {
		return m, m.form.Update(msg)
	}
	return m, nil
}

// handleNavMode handles navigation mode input. Keys the app does not bind
// go to the table.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.people.Table()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = model.ModeInsert
		m.screen = model.ScreenPersonForm
		m.form = NewPersonFormModel(m.db, m.formKeys, m.opts.FieldStyle)
		m.info = ""
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Reload):
		m.info = "Reloading..."
		return m, m.reload()

	case key.Matches(msg, m.keys.Copy):
		tsv := m.people.SelectionTSV()
		if tsv == "" || !t.Selectable() {
			m.info = "Nothing selected"
			return m, nil
		}
		return m, copyCmd(tsv, len(m.people.Selected()))

	case key.Matches(msg, m.keys.Delete):
		selected := m.people.Selected()
		if len(selected) == 0 || !t.Selectable() {
			m.info = "Nothing selected"
			return m, nil
		}
		return m, deletePeopleCmd(m.db, selected)

	case key.Matches(msg, m.keys.Undo):
		if len(m.undoStack) == 0 {
			m.info = "Nothing to undo"
			return m, nil
		}
		cmd := m.undoCmd()
		return m, cmd

	case key.Matches(msg, m.keys.Redo):
		if len(m.redoStack) == 0 {
			m.info = "Nothing to redo"
			return m, nil
		}
		cmd := m.redoCmd()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleLoading):
		return m, m.people.SetLoading(!t.Loading())

	case key.Matches(msg, m.keys.ToggleSelectable):
		t.SetSelectable(!t.Selectable())
		if t.Selectable() {
			m.info = "Checkboxes on"
		} else {
			m.info = "Checkboxes off"
		}
		return m, nil
	}

	return m, m.people.Update(msg)
}

func (m *Model) reload() tea.Cmd {
	return tea.Batch(m.people.SetLoading(true), loadPeopleCmd(m.db))
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.keys, m.people.Table().KeyMap(), m.formKeys, m.width, m.height)
	}

	header := renderHeader(m.breadcrumb(), m.width)
	footer := RenderHelp(m.mode, m.keys, m.formKeys, m.width)
	banners := m.banners()

	contentHeight := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(footer)-len(banners))

	var content string
	switch m.screen {
	case model.ScreenPersonForm:
		if m.form != nil {
			content = m.form.View(m.width, contentHeight)
		}
	default:
		content = m.people.View(m.width, contentHeight)
	}

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	parts := []string{header}
	parts = append(parts, banners...)
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) breadcrumb() []string {
	if m.screen == model.ScreenPersonForm {
		return []string{"People", "Add"}
	}
	return []string{"People"}
}

// banners returns the one-line error and info banners currently shown.
func (m Model) banners() []string {
	var out []string
	limit := max(1, m.width-2)
	if m.error != "" {
		out = append(out, ErrorStyle.Width(m.width).Render(util.TruncateString("Error: "+m.error, limit)))
	}
	if m.info != "" {
		out = append(out, SuccessStyle.Width(m.width).Render(util.TruncateString(m.info, limit)))
	}
	return out
}

// contentTop is the screen row where the content area starts.
func (m Model) contentTop() int {
	return lipgloss.Height(renderHeader(m.breadcrumb(), m.width)) + len(m.banners())
}

func renderHeader(breadcrumbParts []string, width int) string {
	title := HeaderStyle.Render("datagrid")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb
	right := BreadcrumbStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// Commands

func loadPeopleCmd(database *sql.DB) tea.Cmd {
	return func() tea.Msg {
		people, err := db.ListPeople(database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.PeopleLoadedMsg{People: people}
	}
}

func deletePeopleCmd(database *sql.DB, selected []*model.Person) tea.Cmd {
	deleted := make([]model.Person, len(selected))
	ids := make([]int64, len(selected))
	for i, p := range selected {
		deleted[i] = *p
		ids[i] = p.ID
	}
	return func() tea.Msg {
		if err := db.DeletePeople(database, ids); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.PeopleDeletedMsg{Deleted: deleted}
	}
}
