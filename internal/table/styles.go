package table

import (
	"datagrid/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles the table renders with. Every cell style
// must keep one column of horizontal padding on each side.
type Styles struct {
	Header         lipgloss.Style
	ActiveHeader   lipgloss.Style
	SortGlyph      lipgloss.Style
	Divider        lipgloss.Style
	Cell           lipgloss.Style
	Cursor         lipgloss.Style
	Selected       lipgloss.Style
	SelectedCursor lipgloss.Style
	Indicator      lipgloss.Style
	Empty          lipgloss.Style
}

// DefaultStyles returns the default table styles.
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().
		Foreground(theme.ColorText).
		Padding(0, 1)

	header := lipgloss.NewStyle().
		Foreground(theme.ColorAccent).
		Background(theme.ColorSurface).
		Bold(true).
		Padding(0, 1)

	return Styles{
		Header: header,
		ActiveHeader: header.
			Underline(true),
		SortGlyph: lipgloss.NewStyle().
			Foreground(theme.ColorYellow),
		Divider: lipgloss.NewStyle().
			Foreground(theme.ColorMuted),
		Cell: cell,
		Cursor: cell.
			Foreground(theme.ColorBase).
			Background(theme.ColorAccent),
		Selected: cell.
			Foreground(theme.ColorBlue).
			Background(theme.ColorSelect),
		SelectedCursor: cell.
			Foreground(theme.ColorBase).
			Background(theme.ColorBlue).
			Bold(true),
		Indicator: lipgloss.NewStyle().
			Foreground(theme.ColorText).
			Padding(1, 4),
		Empty: lipgloss.NewStyle().
			Foreground(theme.ColorMuted).
			Italic(true).
			Padding(1, 4),
	}
}
