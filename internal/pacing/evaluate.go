package pacing

import (
	"fmt"
	"strings"
)

// Mode selects which raw input is authoritative
type Mode int

const (
	ModePace Mode = iota
	ModeSpeed
)

func (m Mode) String() string {
	if m == ModeSpeed {
		return "speed"
	}
	return "pace"
}

// ParseMode parses "pace" or "speed"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pace":
		return ModePace, nil
	case "speed":
		return ModeSpeed, nil
	}
	return ModePace, fmt.Errorf("mode must be \"pace\" or \"speed\", got %q", s)
}

// Input is a snapshot of the raw entry fields
type Input struct {
	Mode        Mode
	PaceMinutes string
	PaceSeconds string
	Speed       string
}

// Result is everything a front-end needs to render one evaluation
type Result struct {
	Mode     Mode
	SpeedKmh float64
	Pace     Pace
	Splits   []SplitEntry
	Valid    bool // false when the input resolved to no usable speed
}

// Evaluate resolves an input snapshot into speed, pace and splits.
// In pace mode the splits use the two-decimal speed shown to the user.
// An input with no splits reports a speed of 0.
func (c *Calculator) Evaluate(in Input) Result {
	res := Result{Mode: in.Mode}

	switch in.Mode {
	case ModeSpeed:
		if v, ok := ParseNumber(in.Speed); ok && v > 0 {
			res.SpeedKmh = v
		}
		res.Pace = c.SpeedToPace(in.Speed)
	default:
		res.SpeedKmh = c.PaceToSpeed(in.PaceMinutes, in.PaceSeconds)
		res.Pace = paceFromFields(in.PaceMinutes, in.PaceSeconds)
	}

	res.Splits = c.ComputeSplits(res.SpeedKmh)
	res.Valid = len(res.Splits) > 0
	if !res.Valid {
		res.SpeedKmh = 0
	}
	return res
}

// Evaluate resolves an input snapshot using the standard calculator
func Evaluate(in Input) Result {
	return defaultCalculator.Evaluate(in)
}
