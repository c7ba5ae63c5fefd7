package pacing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MinutesPerHour   = 60
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
)

// maxClockMinutes bounds every displayed clock so that minutes fit in an int
// and the matching split time fits in a time.Duration.
const maxClockMinutes = 100_000_000

// Pace is the time needed to cover one kilometer
type Pace struct {
	Minutes int
	Seconds int
}

// String renders the pace as M:SS
func (p Pace) String() string {
	return FormatClock(p.Minutes, p.Seconds)
}

// TotalSeconds returns the pace as seconds per kilometer
func (p Pace) TotalSeconds() int {
	return p.Minutes*SecondsPerMinute + p.Seconds
}

// FormatClock formats minutes and seconds as M:SS
func FormatClock(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ParseNumber parses raw user input as a float.
// Empty, malformed, NaN and infinite values report ok=false with a zero value.
func ParseNumber(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParsePaceText splits "5:30" into its minutes and seconds fields.
// Text without a colon is treated as whole minutes.
func ParsePaceText(text string) (minutesText, secondsText string) {
	text = strings.TrimSpace(text)
	minutesText, secondsText, found := strings.Cut(text, ":")
	if !found {
		return text, "0"
	}
	return minutesText, secondsText
}

// SpeedFromPace converts a pace in minutes and seconds per km to km/h,
// rounded to two decimals. Non-positive paces, and paces so short that the
// speed overflows, yield 0.
func SpeedFromPace(minutes, seconds float64) float64 {
	totalMinutes := minutes + seconds/SecondsPerMinute
	if !(totalMinutes > 0) {
		return 0
	}
	speed := roundTo(MinutesPerHour/totalMinutes, 2)
	if math.IsInf(speed, 0) || math.IsNaN(speed) {
		return 0
	}
	return speed
}

// PaceFromSpeed converts km/h to a pace. Non-positive speeds, and speeds so
// slow that the pace cannot be shown as a clock, yield 0:00.
func PaceFromSpeed(speedKmh float64) Pace {
	if !(speedKmh > 0) || math.IsInf(speedKmh, 0) {
		return Pace{}
	}
	totalMinutes := MinutesPerHour / speedKmh
	if totalMinutes >= maxClockMinutes {
		return Pace{}
	}
	minutes := math.Floor(totalMinutes)
	seconds := math.Round((totalMinutes - minutes) * SecondsPerMinute)
	return normalizeClock(int(minutes), int(seconds))
}

// normalizeClock carries a rounded 60 seconds into the minutes
func normalizeClock(minutes, seconds int) Pace {
	if seconds >= SecondsPerMinute {
		minutes += seconds / SecondsPerMinute
		seconds %= SecondsPerMinute
	}
	return Pace{Minutes: minutes, Seconds: seconds}
}

// paceFromFields truncates an entered pace to whole minutes and seconds.
// Negative fields clamp to zero and seconds past 59 carry into minutes.
func paceFromFields(minutesText, secondsText string) Pace {
	minutes, _ := ParseNumber(minutesText)
	seconds, _ := ParseNumber(secondsText)
	if minutes+seconds/SecondsPerMinute >= maxClockMinutes {
		return Pace{}
	}
	m := int(math.Max(0, math.Trunc(minutes)))
	s := int(math.Max(0, math.Trunc(seconds)))
	return normalizeClock(m, s)
}

// roundTo can return ±Inf when v*10^places overflows
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
