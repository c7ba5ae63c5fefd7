package tui

import (
	"trackpace/internal/config"
	"trackpace/internal/logger"
	"trackpace/internal/pacing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenCalculator Screen = iota
	ScreenCurve
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	calculator CalculatorModel
	curve      CurveModel
	help       HelpModel

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App from the loaded configuration
func NewApp(cfg *config.Config, mode pacing.Mode) *App {
	units := NewUnits(cfg.Display)
	calc := pacing.New(cfg.Distances())

	a := &App{
		screen:     ScreenCalculator,
		calculator: NewCalculatorModel(calc, units, cfg.Calculator, mode),
		curve:      NewCurveModel(units, cfg.Display.CurveSpanKmh),
		help:       NewHelpModel(),
	}
	if path := logger.Path(); path != "" {
		a.status = "Debug log: " + path
	}
	return a
}

// Run starts the interactive program and blocks until it exits
func Run(cfg *config.Config, mode pacing.Mode) error {
	p := tea.NewProgram(NewApp(cfg, mode), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.calculator.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "c":
			a.screen = ScreenCalculator
			return a, nil
		case "g":
			a.screen = ScreenCurve
			a.curve = a.curve.WithSpeed(a.calculator.Result().SpeedKmh)
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var m tea.Model
		m, _ = a.curve.Update(msg)
		a.curve = m.(CurveModel)
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenCalculator:
		var m tea.Model
		m, cmd = a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
	case ScreenCurve:
		var m tea.Model
		m, cmd = a.curve.Update(msg)
		a.curve = m.(CurveModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenCalculator:
		content = a.calculator.View()
	case ScreenCurve:
		content = a.curve.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Track Pacing Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"c", "Calculator", ScreenCalculator},
		{"g", "Curve", ScreenCurve},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
