package input

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func typeRunes(f *Field, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestHelperAndErrorText(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		want      string
		notWanted string
	}{
		{
			name: "helper only",
			cfg:  Config{HelperText: "This is a helper text."},
			want: "This is a helper text.",
		},
		{
			name:      "invalid with message shows error instead of helper",
			cfg:       Config{HelperText: "help", ErrorMessage: "Name is required", Invalid: true},
			want:      "Name is required",
			notWanted: "help",
		},
		{
			name:      "message without invalid shows helper",
			cfg:       Config{HelperText: "help", ErrorMessage: "Name is required"},
			want:      "help",
			notWanted: "Name is required",
		},
		{
			name: "invalid without message falls back to helper",
			cfg:  Config{HelperText: "help", Invalid: true},
			want: "help",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(New(tt.cfg).View())
			if !strings.Contains(out, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, out)
			}
			if tt.notWanted != "" && strings.Contains(out, tt.notWanted) {
				t.Errorf("view should not contain %q:\n%s", tt.notWanted, out)
			}
		})
	}
}

func TestLabelAndPlaceholder(t *testing.T) {
	f := New(Config{Label: "Username", Placeholder: "Enter your username"})
	out := ansi.Strip(f.View())
	if !strings.Contains(out, "Username") {
		t.Errorf("missing label:\n%s", out)
	}
	if !strings.Contains(out, "Enter") {
		t.Errorf("missing placeholder:\n%s", out)
	}
}

func TestPasswordToggle(t *testing.T) {
	f := New(Config{Type: TypePassword, Value: "hunter2"})

	out := ansi.Strip(f.View())
	if strings.Contains(out, "hunter2") {
		t.Fatalf("password visible before toggle:\n%s", out)
	}
	if !strings.Contains(out, "Show") {
		t.Errorf("missing Show affordance:\n%s", out)
	}

	f.TogglePassword()
	out = ansi.Strip(f.View())
	if !f.PasswordVisible() || !strings.Contains(out, "hunter2") {
		t.Fatalf("password hidden after toggle:\n%s", out)
	}
	if !strings.Contains(out, "Hide") {
		t.Errorf("missing Hide affordance:\n%s", out)
	}

	f.Focus()
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if f.PasswordVisible() {
		t.Error("ctrl+t should hide the password again")
	}
}

func TestTogglePasswordIgnoredForText(t *testing.T) {
	f := New(Config{Value: "plain"})
	f.TogglePassword()
	if f.PasswordVisible() {
		t.Error("text fields have no password state")
	}
	if out := ansi.Strip(f.View()); strings.Contains(out, "Show") {
		t.Errorf("text field should not render a toggle:\n%s", out)
	}
}

func TestOnChange(t *testing.T) {
	var changes []string
	f := New(Config{OnChange: func(v string) { changes = append(changes, v) }})
	f.Focus()

	typeRunes(f, "ab")
	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	want := []string{"a", "ab", "a"}
	if len(changes) != len(want) {
		t.Fatalf("got %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}

	f.SetValue("reset")
	if len(changes) != len(want) {
		t.Error("SetValue should not emit a change")
	}
}

func TestDisabledIgnoresInput(t *testing.T) {
	called := false
	f := New(Config{Disabled: true, OnChange: func(string) { called = true }})
	if cmd := f.Focus(); cmd != nil || f.Focused() {
		t.Error("disabled field should not take focus")
	}

	typeRunes(f, "x")
	if called || f.Value() != "" {
		t.Error("disabled field accepted input")
	}
}

func TestSetError(t *testing.T) {
	f := New(Config{HelperText: "help"})
	f.SetError("bad")
	if !f.Invalid() || !strings.Contains(ansi.Strip(f.View()), "bad") {
		t.Fatal("SetError should mark the field invalid and show the message")
	}
	f.SetError("")
	if f.Invalid() || !strings.Contains(ansi.Strip(f.View()), "help") {
		t.Fatal("clearing the error should restore the helper text")
	}
}

func TestLoadingSpinner(t *testing.T) {
	f := New(Config{})
	if f.Init() != nil {
		t.Error("idle field should not tick")
	}
	if f.SetLoading(true) == nil {
		t.Error("SetLoading(true) should start the spinner")
	}
	if f.SetLoading(true) != nil {
		t.Error("SetLoading(true) twice should not tick again")
	}
}

func TestParseVariantAndSize(t *testing.T) {
	variants := map[string]Variant{"filled": Filled, "Outlined": Outlined, "": Outlined, "ghost": Ghost}
	for in, want := range variants {
		got, err := ParseVariant(in)
		if err != nil || got != want {
			t.Errorf("ParseVariant(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseVariant("neon"); err == nil {
		t.Error("expected error for unknown variant")
	}

	sizes := map[string]Size{"sm": SM, "MD": MD, "": MD, "lg": LG}
	for in, want := range sizes {
		got, err := ParseSize(in)
		if err != nil || got != want {
			t.Errorf("ParseSize(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseSize("xl"); err == nil {
		t.Error("expected error for unknown size")
	}
}

func TestStyleRecords(t *testing.T) {
	for _, v := range []Variant{Filled, Outlined, Ghost} {
		for _, s := range []Size{SM, MD, LG} {
			style := boxStyle(v, s, false, false, false)
			if got, want := style.GetWidth(), sizeSpecs[s].width; got != want {
				t.Errorf("%s/%s width = %d, want %d", v, s, got, want)
			}
		}
	}

	if boxStyle(Ghost, MD, false, false, false).GetBorderTop() {
		t.Error("ghost variant should only draw a bottom border")
	}
	for _, v := range []Variant{Filled, Outlined} {
		style := boxStyle(v, MD, false, false, false)
		if !style.GetBorderTop() || !style.GetBorderRight() || !style.GetBorderBottom() || !style.GetBorderLeft() {
			t.Errorf("%s variant should draw a full border", v)
		}
		if out := style.Render("x"); !strings.Contains(out, "┌") {
			t.Errorf("%s variant rendered without a top-left corner:\n%s", v, out)
		}
	}

	// Out-of-range values fall back to the defaults.
	if got := boxStyle(Variant(42), Size(42), false, false, false).GetWidth(); got != sizeSpecs[MD].width {
		t.Errorf("fallback width = %d", got)
	}
}
