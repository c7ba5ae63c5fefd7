package pacing

import (
	"math"
	"time"
)

// SplitEntry is the projected time for one distance
type SplitEntry struct {
	Label      string
	DistanceKm float64
	Time       string        // M:SS
	Elapsed    time.Duration // whole seconds, same value as Time
}

// Calculator converts between pace and speed and projects split times.
// It holds no state beyond its distance table and is safe for concurrent use.
type Calculator struct {
	distances []Distance
}

// New creates a Calculator for the given distance table.
// An empty table falls back to DefaultDistances.
func New(distances []Distance) *Calculator {
	if len(distances) == 0 {
		distances = DefaultDistances
	}
	table := make([]Distance, len(distances))
	copy(table, distances)
	return &Calculator{distances: table}
}

var defaultCalculator = New(DefaultDistances)

// Default returns the calculator for the standard track distances
func Default() *Calculator {
	return defaultCalculator
}

// Distances returns a copy of the calculator's distance table
func (c *Calculator) Distances() []Distance {
	out := make([]Distance, len(c.distances))
	copy(out, c.distances)
	return out
}

// PaceToSpeed converts raw pace fields to km/h, rounded to two decimals.
// Unparseable or non-positive paces yield 0.
func (c *Calculator) PaceToSpeed(minutesText, secondsText string) float64 {
	minutes, ok := ParseNumber(minutesText)
	if !ok {
		return 0
	}
	seconds, ok := ParseNumber(secondsText)
	if !ok {
		return 0
	}
	return SpeedFromPace(minutes, seconds)
}

// SpeedToPace converts a raw km/h field to a pace.
// Unparseable or non-positive speeds yield 0:00.
func (c *Calculator) SpeedToPace(speedText string) Pace {
	speed, ok := ParseNumber(speedText)
	if !ok {
		return Pace{}
	}
	return PaceFromSpeed(speed)
}

// ComputeSplits projects the time for every distance in the table at a
// constant speed. The result follows table order and is empty, never nil,
// when the speed is not positive or too slow for any split to be shown.
func (c *Calculator) ComputeSplits(speedKmh float64) []SplitEntry {
	if !(speedKmh > 0) || math.IsInf(speedKmh, 0) {
		return []SplitEntry{}
	}

	splits := make([]SplitEntry, 0, len(c.distances))
	for _, d := range c.distances {
		timeInSeconds := d.Km / speedKmh * SecondsPerHour
		if timeInSeconds/SecondsPerMinute >= maxClockMinutes {
			return []SplitEntry{}
		}
		minutes := int(math.Floor(timeInSeconds / SecondsPerMinute))
		seconds := int(math.Round(math.Mod(timeInSeconds, SecondsPerMinute)))
		clock := normalizeClock(minutes, seconds)

		splits = append(splits, SplitEntry{
			Label:      d.Label,
			DistanceKm: d.Km,
			Time:       clock.String(),
			Elapsed:    time.Duration(clock.TotalSeconds()) * time.Second,
		})
	}
	return splits
}

// PaceToSpeed converts raw pace fields using the standard calculator
func PaceToSpeed(minutesText, secondsText string) float64 {
	return defaultCalculator.PaceToSpeed(minutesText, secondsText)
}

// SpeedToPace converts a raw speed field using the standard calculator
func SpeedToPace(speedText string) Pace {
	return defaultCalculator.SpeedToPace(speedText)
}

// ComputeSplits projects splits for the standard track distances
func ComputeSplits(speedKmh float64) []SplitEntry {
	return defaultCalculator.ComputeSplits(speedKmh)
}
