package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"c", "Calculator"},
		{"g", "Pace vs speed curve"},
		{"?", "Help (this screen)"},
		{"esc", "Back / close help"},
		{"q", "Quit"},
	}))

	sections = append(sections, m.renderSection("Calculator", []keyHelp{
		{"m", "Toggle pace / speed entry"},
		{"p", "Enter pace (min/km)"},
		{"s", "Enter speed (km/h)"},
		{"tab or :", "Switch between minutes and seconds"},
		{"0-9 .", "Edit the focused field"},
	}))

	sections = append(sections, m.renderTermsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTermsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Terms"))
	lines = append(lines, "")

	terms := []struct {
		name string
		desc string
	}{
		{"Pace", "Time to cover one kilometer, in minutes and seconds."},
		{"Speed", "Distance covered in one hour, in kilometers."},
		{"Split", "Elapsed time for a distance at a constant speed."},
	}

	for _, term := range terms {
		lines = append(lines, "  "+helpKeyStyle.Render(term.name))
		lines = append(lines, "  "+helpDescStyle.Render(term.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
