// Package input is a labelled single-line text field with helper and error
// text, a loading indicator and a password visibility toggle.
package input

import (
	"datagrid/internal/theme"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TypePassword masks the value until the toggle is used.
const TypePassword = "password"

// Config configures a field. Zero values give an enabled, outlined, medium
// text field.
type Config struct {
	Value        string
	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string
	Disabled     bool
	Invalid      bool
	Loading      bool
	Variant      Variant
	Size         Size
	// Type is a free-form input type. Only "password" changes behavior.
	Type      string
	CharLimit int
	// OnChange is called with the new value after each edit.
	OnChange func(value string)
}

// Field is a text input model.
type Field struct {
	cfg          Config
	input        textinput.Model
	spinner      spinner.Model
	showPassword bool
	toggleKey    key.Binding
}

// New creates a field.
func New(cfg Config) *Field {
	if cfg.Type == "" {
		cfg.Type = "text"
	}

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = cfg.Placeholder
	in.CharLimit = cfg.CharLimit
	spec := specFor(cfg.Size)
	// Leave room for the padding, the toggle label and the spinner.
	in.Width = spec.width - 2*spec.padding[1] - 10
	in.TextStyle = lipgloss.NewStyle().Foreground(theme.ColorText)
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.ColorMuted)
	in.EchoCharacter = '•'
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(cfg.Value)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorBlue)

	f := &Field{
		cfg:     cfg,
		input:   in,
		spinner: s,
		toggleKey: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "show/hide"),
		),
	}
	f.syncEcho()
	return f
}

// Init starts the spinner when the field is created loading.
func (f *Field) Init() tea.Cmd {
	if f.cfg.Loading {
		return f.spinner.Tick
	}
	return nil
}

// Value returns the current text.
func (f *Field) Value() string { return f.input.Value() }

// SetValue replaces the text without calling OnChange.
func (f *Field) SetValue(v string) { f.input.SetValue(v) }

// Focus focuses the field.
func (f *Field) Focus() tea.Cmd {
	if f.cfg.Disabled {
		return nil
	}
	return f.input.Focus()
}

// Blur removes focus.
func (f *Field) Blur() { f.input.Blur() }

// Focused reports whether the field has focus.
func (f *Field) Focused() bool { return f.input.Focused() }

// SetError marks the field invalid with msg. An empty msg clears it.
func (f *Field) SetError(msg string) {
	f.cfg.Invalid = msg != ""
	f.cfg.ErrorMessage = msg
}

// Invalid reports whether the field is marked invalid.
func (f *Field) Invalid() bool { return f.cfg.Invalid }

// SetDisabled enables or disables the field.
func (f *Field) SetDisabled(disabled bool) {
	f.cfg.Disabled = disabled
	if disabled {
		f.input.Blur()
	}
}

// SetLoading shows or hides the loading indicator.
func (f *Field) SetLoading(loading bool) tea.Cmd {
	was := f.cfg.Loading
	f.cfg.Loading = loading
	if loading && !was {
		return f.spinner.Tick
	}
	return nil
}

// IsPassword reports whether the field masks its value.
func (f *Field) IsPassword() bool { return f.cfg.Type == TypePassword }

// PasswordVisible reports whether a password field shows its value.
func (f *Field) PasswordVisible() bool { return f.showPassword }

// TogglePassword flips password visibility. It does nothing for other types.
func (f *Field) TogglePassword() {
	if !f.IsPassword() {
		return
	}
	f.showPassword = !f.showPassword
	f.syncEcho()
}

func (f *Field) syncEcho() {
	if f.IsPassword() && !f.showPassword {
		f.input.EchoMode = textinput.EchoPassword
		return
	}
	f.input.EchoMode = textinput.EchoNormal
}

// Update handles input and spinner ticks.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.cfg.Loading {
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if f.cfg.Disabled {
			return nil
		}
		if f.IsPassword() && key.Matches(msg, f.toggleKey) {
			f.TogglePassword()
			return nil
		}
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if after := f.input.Value(); after != before && f.cfg.OnChange != nil {
		f.cfg.OnChange(after)
	}
	return cmd
}

// View renders the label, the box and the helper or error line.
func (f *Field) View() string {
	var parts []string
	if f.cfg.Label != "" {
		parts = append(parts, labelStyle.Render(f.cfg.Label))
	}

	content := f.input.View()
	if f.IsPassword() {
		toggle := "Show"
		if f.showPassword {
			toggle = "Hide"
		}
		content += " " + toggleStyle.Render(toggle)
	}
	if f.cfg.Loading {
		content += " " + f.spinner.View()
	}
	box := boxStyle(f.cfg.Variant, f.cfg.Size, f.Focused(), f.cfg.Invalid, f.cfg.Disabled)
	parts = append(parts, box.Render(content))

	switch {
	case f.cfg.Invalid && f.cfg.ErrorMessage != "":
		parts = append(parts, errorStyle.Render(f.cfg.ErrorMessage))
	case f.cfg.HelperText != "":
		parts = append(parts, helperStyle.Render(f.cfg.HelperText))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
