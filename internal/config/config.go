package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"trackpace/internal/pacing"
)

// Config represents the application configuration
type Config struct {
	Calculator CalculatorConfig `json:"calculator"`
	Splits     SplitsConfig     `json:"splits"`
	Display    DisplayConfig    `json:"display"`
}

// CalculatorConfig holds the values the entry fields start with
type CalculatorConfig struct {
	Mode        string `json:"mode"`
	PaceMinutes string `json:"pace_minutes"`
	PaceSeconds string `json:"pace_seconds"`
	SpeedKmh    string `json:"speed_kmh"`
}

// SplitsConfig holds the split distance table
type SplitsConfig struct {
	Distances []string `json:"distances"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	CurveSpanKmh       float64 `json:"curve_span_kmh"`
	HideDistanceMeters bool    `json:"hide_distance_meters"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	distances := make([]string, 0, len(pacing.DefaultDistances))
	for _, d := range pacing.DefaultDistances {
		distances = append(distances, d.Label)
	}

	return Config{
		Calculator: CalculatorConfig{
			Mode:        "pace",
			PaceMinutes: "5",
			PaceSeconds: "00",
			SpeedKmh:    "12",
		},
		Splits: SplitsConfig{
			Distances: distances,
		},
		Display: DisplayConfig{
			CurveSpanKmh: 4,
		},
	}
}

// Load reads the configuration from ~/.trackpace/config.json
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from the given path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Calculator.Mode == "" {
		cfg.Calculator.Mode = defaults.Calculator.Mode
	}
	if cfg.Calculator.PaceMinutes == "" {
		cfg.Calculator.PaceMinutes = defaults.Calculator.PaceMinutes
	}
	if cfg.Calculator.PaceSeconds == "" {
		cfg.Calculator.PaceSeconds = defaults.Calculator.PaceSeconds
	}
	if cfg.Calculator.SpeedKmh == "" {
		cfg.Calculator.SpeedKmh = defaults.Calculator.SpeedKmh
	}
	if len(cfg.Splits.Distances) == 0 {
		cfg.Splits.Distances = defaults.Splits.Distances
	}
	if cfg.Display.CurveSpanKmh == 0 {
		cfg.Display.CurveSpanKmh = defaults.Display.CurveSpanKmh
	}

	return &cfg, nil
}

// SaveTo writes the configuration to the given path
func SaveTo(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes the default config to path unless a file is already there.
// It reports whether a file was written.
func CreateExample(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	if err := SaveTo(path, &example); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks that the config values are usable
func (c *Config) Validate() error {
	if _, err := pacing.ParseMode(c.Calculator.Mode); err != nil {
		return fmt.Errorf("calculator.mode: %w", err)
	}

	if _, err := pacing.ParseDistances(c.Splits.Distances); err != nil {
		return fmt.Errorf("splits.distances: %w", err)
	}

	if c.Display.CurveSpanKmh <= 0 || c.Display.CurveSpanKmh > 20 {
		return fmt.Errorf("display.curve_span_kmh must be between 0 and 20, got %v", c.Display.CurveSpanKmh)
	}

	return nil
}

// Mode returns the configured start-up mode, defaulting to pace
func (c *Config) Mode() pacing.Mode {
	mode, _ := pacing.ParseMode(c.Calculator.Mode)
	return mode
}

// Distances returns the parsed split distance table.
// An invalid or empty table falls back to the standard track distances.
func (c *Config) Distances() []pacing.Distance {
	distances, err := pacing.ParseDistances(c.Splits.Distances)
	if err != nil || len(distances) == 0 {
		return pacing.DefaultDistances
	}
	return distances
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".trackpace"), nil
}
