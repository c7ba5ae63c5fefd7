package pacing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Distance is one row of the split table
type Distance struct {
	Label string
	Km    float64
}

// Meters returns the distance in meters
func (d Distance) Meters() float64 {
	return d.Km * metersPerKm
}

const metersPerKm = 1000.0

// DefaultDistances is the standard track distance table, ascending.
// Split output follows this order.
var DefaultDistances = []Distance{
	{"100m", 0.1},
	{"200m", 0.2},
	{"400m", 0.4},
	{"800m", 0.8},
	{"1000m", 1.0},
	{"1500m", 1.5},
	{"3000m", 3.0},
	{"5000m", 5.0},
	{"10000m", 10.0},
}

// ErrInvalidDistance is returned when a distance entry cannot be parsed
var ErrInvalidDistance = errors.New("invalid distance")

// ParseDistance parses "400m", "400" (meters) or "1.5km".
// The label is canonicalized to whole meters, e.g. "1500m".
func ParseDistance(text string) (Distance, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	scale := 1.0
	switch {
	case strings.HasSuffix(s, "km"):
		s = strings.TrimSuffix(s, "km")
		scale = metersPerKm
	case strings.HasSuffix(s, "m"):
		s = strings.TrimSuffix(s, "m")
	}

	v, ok := ParseNumber(s)
	if !ok {
		return Distance{}, fmt.Errorf("%w: %q", ErrInvalidDistance, text)
	}
	meters := v * scale
	if meters <= 0 {
		return Distance{}, fmt.Errorf("%w: %q must be positive", ErrInvalidDistance, text)
	}

	return Distance{
		Label: strconv.FormatFloat(meters, 'f', -1, 64) + "m",
		Km:    meters / metersPerKm,
	}, nil
}

// ParseDistances parses a distance list, which must be strictly ascending
func ParseDistances(texts []string) ([]Distance, error) {
	distances := make([]Distance, 0, len(texts))
	for i, text := range texts {
		d, err := ParseDistance(text)
		if err != nil {
			return nil, err
		}
		if i > 0 && d.Km <= distances[i-1].Km {
			return nil, fmt.Errorf("%w: %q must be longer than %q", ErrInvalidDistance, d.Label, distances[i-1].Label)
		}
		distances = append(distances, d)
	}
	return distances, nil
}
