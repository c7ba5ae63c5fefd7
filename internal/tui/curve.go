package tui

import (
	"fmt"
	"math"

	"trackpace/internal/pacing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

const (
	curvePoints   = 60
	minCurveSpeed = 1.0 // km/h; the curve explodes toward zero
)

// CurveModel plots pace against speed around the current speed
type CurveModel struct {
	units    Units
	spanKmh  float64
	speedKmh float64
	width    int
}

// NewCurveModel creates a curve screen covering speed ± spanKmh
func NewCurveModel(units Units, spanKmh float64) CurveModel {
	return CurveModel{
		units:   units,
		spanKmh: spanKmh,
		width:   curvePoints,
	}
}

// WithSpeed returns a copy centered on the given speed
func (m CurveModel) WithSpeed(kmh float64) CurveModel {
	m.speedKmh = kmh
	return m
}

// Init initializes the curve screen
func (m CurveModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m CurveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		// leave room for the axis labels and card border
		m.width = max(20, min(curvePoints*2, msg.Width-20))
	}
	return m, nil
}

// View renders the curve screen
func (m CurveModel) View() string {
	title := cardTitleStyle.Render("Pace vs Speed")

	if !(m.speedKmh > 0) {
		empty := emptyStyle.Render("Enter a pace or speed above zero on the calculator screen [c].")
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, empty))
	}

	speeds, paces := paceCurve(m.speedKmh, m.spanKmh, curvePoints)

	caption := fmt.Sprintf("pace (%s) from %s to %s %s",
		paceLabel,
		humanize.FtoaWithDigits(speeds[0], 2),
		humanize.FtoaWithDigits(speeds[len(speeds)-1], 2),
		speedLabel,
	)

	graph := asciigraph.Plot(paces,
		asciigraph.Height(10),
		asciigraph.Width(m.width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)

	current := fmt.Sprintf("Current: %s = %s",
		m.units.FormatSpeedWithUnit(m.speedKmh),
		m.units.FormatPaceWithUnit(pacing.PaceFromSpeed(m.speedKmh)),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		graph,
		"",
		inputLabelStyle.Render(current),
	))
}

// paceCurve samples pace in decimal minutes per km for evenly spaced speeds
// in [speed-span, speed+span], never going below minCurveSpeed.
func paceCurve(speedKmh, spanKmh float64, points int) (speeds, paces []float64) {
	if points < 2 {
		points = 2
	}
	lo := math.Max(minCurveSpeed, speedKmh-spanKmh)
	hi := math.Max(lo+spanKmh, speedKmh+spanKmh)
	step := (hi - lo) / float64(points-1)

	speeds = make([]float64, points)
	paces = make([]float64, points)
	for i := range points {
		v := lo + step*float64(i)
		speeds[i] = v
		paces[i] = pacing.MinutesPerHour / v
	}
	return speeds, paces
}
