package ui

import (
	"fmt"

	"datagrid/internal/db"
	"datagrid/internal/model"
	"datagrid/internal/util"

	tea "github.com/charmbracelet/bubbletea"
)

type undoAction struct {
	label string
	undo  func() error
	redo  func() error
}

type undoAppliedMsg struct {
	err       error
	action    undoAction
	direction string // undo, redo
}

func (m *Model) pushUndoAction(action undoAction) {
	m.undoStack = append(m.undoStack, action)
	m.redoStack = nil
}

func (m *Model) undoCmd() tea.Cmd {
	if len(m.undoStack) == 0 {
		return nil
	}
	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	return func() tea.Msg {
		err := action.undo()
		return undoAppliedMsg{err: err, action: action, direction: "undo"}
	}
}

func (m *Model) redoCmd() tea.Cmd {
	if len(m.redoStack) == 0 {
		return nil
	}
	action := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	return func() tea.Msg {
		err := action.redo()
		return undoAppliedMsg{err: err, action: action, direction: "redo"}
	}
}

func (m *Model) buildPersonSaveAction(msg model.PersonSavedMsg) undoAction {
	database := m.db
	after := msg.After
	return undoAction{
		label: fmt.Sprintf("add %s", after.Name),
		undo: func() error {
			return db.DeletePeople(database, []int64{after.ID})
		},
		redo: func() error {
			return db.InsertPersonWithID(database, after)
		},
	}
}

func (m *Model) buildDeleteAction(msg model.PeopleDeletedMsg) undoAction {
	database := m.db
	deleted := append([]model.Person(nil), msg.Deleted...)
	ids := make([]int64, len(deleted))
	for i, p := range deleted {
		ids[i] = p.ID
	}
	return undoAction{
		label: "delete " + util.Plural(len(deleted), "person", "people"),
		undo: func() error {
			return db.RestorePeople(database, deleted)
		},
		redo: func() error {
			return db.DeletePeople(database, ids)
		},
	}
}

// applyUndoResult moves the action onto the opposite stack and reloads.
func (m *Model) applyUndoResult(msg undoAppliedMsg) tea.Cmd {
	if msg.err != nil {
		m.error = fmt.Sprintf("%s failed: %v", msg.direction, msg.err)
		// Put it back so the user can retry.
		if msg.direction == "undo" {
			m.undoStack = append(m.undoStack, msg.action)
		} else {
			m.redoStack = append(m.redoStack, msg.action)
		}
		return nil
	}

	if msg.direction == "undo" {
		m.redoStack = append(m.redoStack, msg.action)
		m.info = "Undid " + msg.action.label + " (ctrl+r to redo)"
	} else {
		m.undoStack = append(m.undoStack, msg.action)
		m.info = "Redid " + msg.action.label
	}
	m.error = ""
	return m.reload()
}
