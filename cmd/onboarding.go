package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datagrid/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OnboardingSettings is the first-run choice, stored as onboarding.json.
type OnboardingSettings struct {
	Completed  bool `json:"completed"`
	SeedSample bool `json:"seed_sample"`
}

func onboardingPath(configDir string) string {
	return filepath.Join(configDir, "onboarding.json")
}

func loadOnboardingSettings(configDir string) (OnboardingSettings, error) {
	data, err := os.ReadFile(onboardingPath(configDir))
	if err != nil {
		if os.IsNotExist(err) {
			return OnboardingSettings{}, nil
		}
		return OnboardingSettings{}, err
	}

	var settings OnboardingSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return OnboardingSettings{}, err
	}
	return settings, nil
}

func saveOnboardingSettings(configDir string, settings OnboardingSettings) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(onboardingPath(configDir), data, 0644)
}

func shouldRunOnboarding(settings OnboardingSettings) bool {
	if settings.Completed {
		return false
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

type onboardingStep int

const (
	stepSeed onboardingStep = iota
	stepDone
)

type onboardingModel struct {
	step     onboardingStep
	seed     bool
	settings OnboardingSettings
	status   string
	width    int
	height   int
}

var (
	obTitleStyle = lipgloss.NewStyle().
			Foreground(theme.ColorAccent).
			Bold(true)

	obHeaderStyle = lipgloss.NewStyle().
			Foreground(theme.ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.ColorMuted)

	obPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.ColorMuted).
			Padding(1, 2)

	obLabelStyle = lipgloss.NewStyle().
			Foreground(theme.ColorAccent).
			Bold(true)

	obMutedStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted)

	obOptionStyle = lipgloss.NewStyle().
			Foreground(theme.ColorText)

	obOptionSelected = lipgloss.NewStyle().
				Foreground(theme.ColorAccent).
				Bold(true)

	obFooterStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(theme.ColorMuted)
)

func newOnboardingModel() onboardingModel {
	return onboardingModel{
		step: stepSeed,
		seed: true,
		settings: OnboardingSettings{
			Completed:  true,
			SeedSample: true,
		},
	}
}

func (m onboardingModel) Init() tea.Cmd { return nil }

func (m onboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.step != stepSeed {
			return m, nil
		}
		switch msg.String() {
		case "y", "Y":
			m.seed = true
			return m.finish()
		case "n", "N":
			m.seed = false
			return m.finish()
		case "up", "k", "left", "h":
			m.seed = true
			return m, nil
		case "down", "j", "right", "l":
			m.seed = false
			return m, nil
		case "enter":
			return m.finish()
		case "ctrl+c", "q", "esc":
			m.seed = false
			return m.finish()
		}
	}
	return m, nil
}

func (m onboardingModel) finish() (tea.Model, tea.Cmd) {
	m.settings.SeedSample = m.seed
	if m.seed {
		m.status = "Sample people will be added to an empty database."
	} else {
		m.status = "Starting with an empty table."
	}
	m.step = stepDone
	return m, tea.Quit
}

func (m onboardingModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 24
	}

	header := m.renderHeader(width)
	footer := m.renderFooter(width)
	content := m.renderContent(width, max(8, height-4))

	return lipgloss.NewStyle().
		Foreground(theme.ColorText).
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

func (m onboardingModel) renderHeader(width int) string {
	left := "  " + obTitleStyle.Render("datagrid") + " " + obMutedStyle.Render("› Setup")
	right := obMutedStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "
	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return obHeaderStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m onboardingModel) renderFooter(width int) string {
	if m.step == stepSeed {
		return obFooterStyle.Width(width).Render("↑↓/jk to choose  y/n enter to confirm  q skip")
	}
	return obFooterStyle.Width(width).Render("Setup complete")
}

func (m onboardingModel) renderContent(width, height int) string {
	cardWidth := min(80, width-6)
	if cardWidth < 40 {
		cardWidth = width - 2
	}

	var body string
	switch m.step {
	case stepSeed:
		yes := "Add sample people (John Doe, Jane Smith, ...)"
		no := "Start with an empty table"

		var yesDisplay, noDisplay string
		if m.seed {
			yesDisplay = "  " + obOptionSelected.Render("→ "+yes)
			noDisplay = "    " + obOptionStyle.Render(no)
		} else {
			yesDisplay = "    " + obOptionStyle.Render(yes)
			noDisplay = "  " + obOptionSelected.Render("→ "+no)
		}

		body = lipgloss.JoinVertical(
			lipgloss.Left,
			obLabelStyle.Render("Seed the database with sample people?"),
			"",
			yesDisplay,
			noDisplay,
			"",
			obMutedStyle.Render("You can change this later in ~/.datagrid/onboarding.json"),
		)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, obLabelStyle.Render("Onboarding Complete"), "", obMutedStyle.Render(m.status))
	}

	card := obPanelStyle.Width(cardWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}

func runOnboarding(configDir string) (OnboardingSettings, error) {
	prog := tea.NewProgram(newOnboardingModel(), tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return OnboardingSettings{}, fmt.Errorf("onboarding tui failed: %w", err)
	}
	m, ok := finalModel.(onboardingModel)
	if !ok {
		return OnboardingSettings{}, fmt.Errorf("unexpected onboarding model type")
	}
	if err := saveOnboardingSettings(configDir, m.settings); err != nil {
		return OnboardingSettings{}, err
	}
	return m.settings, nil
}
