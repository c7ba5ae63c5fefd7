package tui

import (
	"fmt"
	"strings"

	"trackpace/internal/config"
	"trackpace/internal/logger"
	"trackpace/internal/pacing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type field int

const (
	fieldMinutes field = iota
	fieldSeconds
	fieldSpeed
)

// CalculatorModel is the pace/speed entry screen.
// It owns only the raw entry fields and the mode; every render evaluates a
// fresh pacing.Input snapshot.
type CalculatorModel struct {
	calc  *pacing.Calculator
	units Units
	mode  pacing.Mode
	focus field

	minutes textinput.Model
	seconds textinput.Model
	speed   textinput.Model
}

// NewCalculatorModel creates a calculator screen with the configured start values
func NewCalculatorModel(calc *pacing.Calculator, units Units, cfg config.CalculatorConfig, mode pacing.Mode) CalculatorModel {
	m := CalculatorModel{
		calc:    calc,
		units:   units,
		minutes: newNumberInput("5", cfg.PaceMinutes, 4),
		seconds: newNumberInput("00", cfg.PaceSeconds, 2),
		speed:   newNumberInput("12", cfg.SpeedKmh, 6),
	}
	m.setMode(mode)
	return m
}

func newNumberInput(placeholder, value string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 8
	ti.Width = width
	ti.SetValue(value)
	return ti
}

// Init initializes the calculator screen
func (m CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the current entry mode
func (m CalculatorModel) Mode() pacing.Mode {
	return m.mode
}

// Input snapshots the raw entry fields
func (m CalculatorModel) Input() pacing.Input {
	return pacing.Input{
		Mode:        m.mode,
		PaceMinutes: m.minutes.Value(),
		PaceSeconds: m.seconds.Value(),
		Speed:       m.speed.Value(),
	}
}

// Result evaluates the current entry fields
func (m CalculatorModel) Result() pacing.Result {
	return m.calc.Evaluate(m.Input())
}

// Update handles messages
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "m":
			if m.mode == pacing.ModePace {
				m.setMode(pacing.ModeSpeed)
			} else {
				m.setMode(pacing.ModePace)
			}
			return m, nil
		case "p":
			m.setMode(pacing.ModePace)
			return m, nil
		case "s":
			m.setMode(pacing.ModeSpeed)
			return m, nil
		case "tab", "shift+tab", ":":
			if m.mode == pacing.ModePace {
				if m.focus == fieldMinutes {
					m.setFocus(fieldSeconds)
				} else {
					m.setFocus(fieldMinutes)
				}
			}
			return m, nil
		}

		// Entry fields take digits and a decimal point only
		if msg.Type == tea.KeyRunes && !isNumeric(msg.Runes) {
			return m, nil
		}
	}

	before := m.Input()

	var cmd tea.Cmd
	switch m.focus {
	case fieldMinutes:
		m.minutes, cmd = m.minutes.Update(msg)
	case fieldSeconds:
		m.seconds, cmd = m.seconds.Update(msg)
	case fieldSpeed:
		m.speed, cmd = m.speed.Update(msg)
	}

	if in := m.Input(); in != before {
		if res := m.calc.Evaluate(in); !res.Valid {
			logger.L().Debug("input does not resolve to a speed",
				zap.Stringer("mode", in.Mode),
				zap.String("pace_minutes", in.PaceMinutes),
				zap.String("pace_seconds", in.PaceSeconds),
				zap.String("speed", in.Speed),
			)
		}
	}

	return m, cmd
}

func (m *CalculatorModel) setMode(mode pacing.Mode) {
	if m.mode != mode {
		logger.L().Debug("mode switched", zap.Stringer("mode", mode))
	}
	m.mode = mode
	if mode == pacing.ModeSpeed {
		m.setFocus(fieldSpeed)
	} else {
		m.setFocus(fieldMinutes)
	}
}

func (m *CalculatorModel) setFocus(f field) {
	m.focus = f
	m.minutes.Blur()
	m.seconds.Blur()
	m.speed.Blur()
	switch f {
	case fieldMinutes:
		m.minutes.Focus()
	case fieldSeconds:
		m.seconds.Focus()
	case fieldSpeed:
		m.speed.Focus()
	}
}

func isNumeric(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// View renders the calculator screen
func (m CalculatorModel) View() string {
	res := m.Result()

	top := lipgloss.JoinVertical(lipgloss.Left,
		m.renderToggle(),
		"",
		m.renderInputs(),
		"",
		m.renderReadout(res),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		cardStyle.Render(top),
		m.renderSplits(res),
	)
}

func (m CalculatorModel) renderToggle() string {
	pace := "Enter Pace (" + paceLabel + ")"
	speed := "Enter Speed (" + speedLabel + ")"
	if m.mode == pacing.ModePace {
		return toggleActiveStyle.Render(pace) + " " + toggleInactiveStyle.Render(speed)
	}
	return toggleInactiveStyle.Render(pace) + " " + toggleActiveStyle.Render(speed)
}

func (m CalculatorModel) renderInputs() string {
	if m.mode == pacing.ModeSpeed {
		return lipgloss.JoinVertical(lipgloss.Left,
			inputLabelStyle.Render("Speed ("+speedLabel+")"),
			m.inputBox(m.speed, fieldSpeed),
		)
	}

	minutes := lipgloss.JoinVertical(lipgloss.Left,
		m.inputBox(m.minutes, fieldMinutes),
		inputLabelStyle.Render("minutes"),
	)
	seconds := lipgloss.JoinVertical(lipgloss.Left,
		m.inputBox(m.seconds, fieldSeconds),
		inputLabelStyle.Render("seconds"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		inputLabelStyle.Render("Pace ("+paceLabel+")"),
		lipgloss.JoinHorizontal(lipgloss.Top, minutes, " : ", seconds),
	)
}

func (m CalculatorModel) inputBox(ti textinput.Model, f field) string {
	if m.focus == f {
		return inputFocusedStyle.Render(ti.View())
	}
	return inputBlurredStyle.Render(ti.View())
}

func (m CalculatorModel) renderReadout(res pacing.Result) string {
	speed := lipgloss.JoinVertical(lipgloss.Left,
		inputLabelStyle.Render("Speed"),
		RenderReadout(speedValueStyle, m.units.FormatSpeed(res.SpeedKmh), speedLabel),
	)
	pace := lipgloss.JoinVertical(lipgloss.Left,
		inputLabelStyle.Render("Pace"),
		RenderReadout(paceValueStyle, res.Pace.String(), paceLabel),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, speed, "      ", pace)
}

func (m CalculatorModel) renderSplits(res pacing.Result) string {
	title := cardTitleStyle.Render("Split Times")

	if !res.Valid {
		empty := emptyStyle.Render("Enter a pace or speed above zero to see split times.")
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, empty))
	}

	distances := m.calc.Distances()
	showMeters := m.units.ShowMeters()

	var header string
	if showMeters {
		header = fmt.Sprintf("%-8s  %10s  %8s", "Distance", "Meters", "Time")
	} else {
		header = fmt.Sprintf("%-8s  %8s", "Distance", "Time")
	}

	rows := []string{tableHeaderStyle.Render(header)}
	for i, split := range res.Splits {
		var row string
		if showMeters {
			row = fmt.Sprintf("%-8s  %10s  %s", split.Label, m.units.FormatDistance(distances[i]), splitTimeStyle.Render(fmt.Sprintf("%8s", split.Time)))
		} else {
			row = fmt.Sprintf("%-8s  %s", split.Label, splitTimeStyle.Render(fmt.Sprintf("%8s", split.Time)))
		}
		rows = append(rows, tableRowStyle.Render(row))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n")))
}
