package ui

import (
	"fmt"

	"datagrid/internal/model"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type copiedMsg struct {
	rows int
}

func copyCmd(text string, rows int) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return copiedMsg{rows: rows}
	}
}
