package input

import (
	"fmt"
	"strings"

	"datagrid/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Variant is the visual treatment of the field box.
type Variant int

const (
	Outlined Variant = iota
	Filled
	Ghost
)

func (v Variant) String() string {
	switch v {
	case Filled:
		return "filled"
	case Ghost:
		return "ghost"
	default:
		return "outlined"
	}
}

// ParseVariant parses "filled", "outlined" or "ghost".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filled":
		return Filled, nil
	case "outlined", "":
		return Outlined, nil
	case "ghost":
		return Ghost, nil
	}
	return Outlined, fmt.Errorf("unknown input variant %q", s)
}

// Size is the field size.
type Size int

const (
	MD Size = iota
	SM
	LG
)

func (s Size) String() string {
	switch s {
	case SM:
		return "sm"
	case LG:
		return "lg"
	default:
		return "md"
	}
}

// ParseSize parses "sm", "md" or "lg".
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sm":
		return SM, nil
	case "md", "":
		return MD, nil
	case "lg":
		return LG, nil
	}
	return MD, fmt.Errorf("unknown input size %q", s)
}

// sizeSpec is the fixed geometry for a Size.
type sizeSpec struct {
	width   int
	padding [2]int
}

var sizeSpecs = map[Size]sizeSpec{
	SM: {width: 20, padding: [2]int{0, 1}},
	MD: {width: 30, padding: [2]int{0, 1}},
	LG: {width: 40, padding: [2]int{1, 2}},
}

func specFor(s Size) sizeSpec {
	if spec, ok := sizeSpecs[s]; ok {
		return spec
	}
	return sizeSpecs[MD]
}

var variantStyles = map[Variant]lipgloss.Style{
	Filled: lipgloss.NewStyle().
		Background(theme.ColorSurface).
		Border(lipgloss.NormalBorder(), true).
		BorderForeground(theme.ColorMuted),
	Outlined: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true).
		BorderForeground(theme.ColorMuted),
	Ghost: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderBottom(true).
		BorderForeground(theme.ColorMuted),
}

func variantStyle(v Variant) lipgloss.Style {
	if s, ok := variantStyles[v]; ok {
		return s
	}
	return variantStyles[Outlined]
}

// boxStyle combines variant, size and state into the field box style.
func boxStyle(v Variant, s Size, focused, invalid, disabled bool) lipgloss.Style {
	spec := specFor(s)
	style := variantStyle(v).
		Width(spec.width).
		Padding(spec.padding[0], spec.padding[1])

	switch {
	case invalid:
		style = style.BorderForeground(theme.ColorRed)
	case focused && !disabled:
		style = style.BorderForeground(theme.ColorAccent)
	}
	if disabled {
		style = style.
			Foreground(theme.ColorMuted).
			Background(theme.ColorBase)
	}
	return style
}

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(theme.ColorAccent).
			Bold(true)

	helperStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(theme.ColorRed)

	toggleStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted)
)
