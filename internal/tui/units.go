package tui

import (
	"fmt"

	"trackpace/internal/config"
	"trackpace/internal/pacing"

	"github.com/dustin/go-humanize"
)

const (
	speedLabel = "km/h"
	paceLabel  = "min/km"
)

// Units provides formatting based on display preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatSpeed formats km/h with two decimals and no unit label
func (u Units) FormatSpeed(kmh float64) string {
	return fmt.Sprintf("%.2f", kmh)
}

// FormatSpeedWithUnit formats km/h with the unit label
func (u Units) FormatSpeedWithUnit(kmh float64) string {
	return u.FormatSpeed(kmh) + " " + speedLabel
}

// FormatPaceWithUnit formats a pace with the unit label
func (u Units) FormatPaceWithUnit(p pacing.Pace) string {
	return p.String() + " " + paceLabel
}

// FormatDistance formats a distance in meters with thousands separators,
// e.g. "10,000 m". Returns "" when meters are hidden.
func (u Units) FormatDistance(d pacing.Distance) string {
	if u.cfg.HideDistanceMeters {
		return ""
	}
	return humanize.Commaf(d.Meters()) + " m"
}

// ShowMeters reports whether the split table has a meters column
func (u Units) ShowMeters() bool {
	return !u.cfg.HideDistanceMeters
}
