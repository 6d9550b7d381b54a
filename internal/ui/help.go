package ui

import (
	"strings"

	"datagrid/internal/model"
	"datagrid/internal/table"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(mode model.Mode, keys KeyMap, formKeys FormKeyMap, width int) string {
	if mode == model.ModeInsert {
		return renderHelpLine([]string{
			bindingHelp(formKeys.NextField),
			bindingHelp(formKeys.PrevField),
			bindingHelp(formKeys.Save),
			bindingHelp(formKeys.Cancel),
		}, width)
	}

	return renderHelpLine([]string{
		helpKey("j/k", "navigate"),
		helpKey("tab", "next col"),
		helpKey("s", "sort"),
		helpKey("space", "select"),
		bindingHelp(keys.Add),
		bindingHelp(keys.Copy),
		bindingHelp(keys.Delete),
		bindingHelp(keys.Reload),
		bindingHelp(keys.Help),
	}, width)
}

func bindingHelp(b key.Binding) string {
	h := b.Help()
	return helpKey(h.Key, h.Desc)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(keys KeyMap, tableKeys table.KeyMap, formKeys FormKeyMap, width, height int) string {
	content := lipgloss.NewStyle().
		Width(max(10, width-4)).
		Height(max(1, height-6)).
		Padding(1, 2)

	sections := []string{
		titleSection("Table"),
		helpSection(append(bindingItems(tableKeys.Bindings()...),
			helpItem{"click header", "Sort by column (again to reverse)"},
			helpItem{"click [ ]", "Select row"},
		)),
		titleSection("People"),
		helpSection(bindingItems(
			keys.Add, keys.Reload, keys.Copy, keys.Delete, keys.Undo, keys.Redo,
			keys.ToggleSelectable, keys.ToggleLoading, keys.Help, keys.Quit,
		)),
		titleSection("Add Person Form"),
		helpSection(bindingItems(formKeys.NextField, formKeys.PrevField, formKeys.Save, formKeys.Cancel)),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func bindingItems(bindings ...key.Binding) []helpItem {
	items := make([]helpItem, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, helpItem{h.Key, h.Desc})
	}
	return items
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
