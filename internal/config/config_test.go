package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trackpace/internal/pacing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Initial entry fields match the calculator's opening state
	if cfg.Calculator.Mode != "pace" {
		t.Errorf("Calculator.Mode = %q, want %q", cfg.Calculator.Mode, "pace")
	}
	if cfg.Calculator.PaceMinutes != "5" {
		t.Errorf("Calculator.PaceMinutes = %q, want %q", cfg.Calculator.PaceMinutes, "5")
	}
	if cfg.Calculator.PaceSeconds != "00" {
		t.Errorf("Calculator.PaceSeconds = %q, want %q", cfg.Calculator.PaceSeconds, "00")
	}
	if cfg.Calculator.SpeedKmh != "12" {
		t.Errorf("Calculator.SpeedKmh = %q, want %q", cfg.Calculator.SpeedKmh, "12")
	}

	if diff := cmp.Diff(pacing.DefaultDistances, cfg.Distances()); diff != "" {
		t.Errorf("Distances() mismatch (-want +got):\n%s", diff)
	}

	if cfg.Display.CurveSpanKmh != 4 {
		t.Errorf("Display.CurveSpanKmh = %v, want 4", cfg.Display.CurveSpanKmh)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectError bool
		errContains string
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:   "speed mode",
			modify: func(c *Config) { c.Calculator.Mode = "speed" },
		},
		{
			name:        "unknown mode",
			modify:      func(c *Config) { c.Calculator.Mode = "cadence" },
			expectError: true,
			errContains: "calculator.mode",
		},
		{
			name:        "distances out of order",
			modify:      func(c *Config) { c.Splits.Distances = []string{"400m", "100m"} },
			expectError: true,
			errContains: "splits.distances",
		},
		{
			name:        "malformed distance",
			modify:      func(c *Config) { c.Splits.Distances = []string{"a lap"} },
			expectError: true,
			errContains: "splits.distances",
		},
		{
			name:   "custom distances",
			modify: func(c *Config) { c.Splits.Distances = []string{"400m", "1km", "5km"} },
		},
		{
			name:        "zero curve span",
			modify:      func(c *Config) { c.Display.CurveSpanKmh = 0 },
			expectError: true,
			errContains: "curve_span_kmh",
		},
		{
			name:        "huge curve span",
			modify:      func(c *Config) { c.Display.CurveSpanKmh = 50 },
			expectError: true,
			errContains: "curve_span_kmh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
		if !errors.Is(err, ErrNoConfig) {
			t.Errorf("LoadFrom() error = %v, want ErrNoConfig", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFrom(path)
		if err == nil || !strings.Contains(err.Error(), "parsing config file") {
			t.Errorf("LoadFrom() error = %v, want parse error", err)
		}
	})

	t.Run("partial file gets defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data := `{"calculator": {"mode": "speed", "speed_kmh": "15"}, "splits": {"distances": ["400m", "1.5km"]}}`
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() unexpected error: %v", err)
		}
		if cfg.Mode() != pacing.ModeSpeed {
			t.Errorf("Mode() = %v, want speed", cfg.Mode())
		}
		if cfg.Calculator.SpeedKmh != "15" {
			t.Errorf("Calculator.SpeedKmh = %q, want %q", cfg.Calculator.SpeedKmh, "15")
		}
		if cfg.Calculator.PaceMinutes != "5" || cfg.Calculator.PaceSeconds != "00" {
			t.Errorf("pace defaults = %s:%s, want 5:00", cfg.Calculator.PaceMinutes, cfg.Calculator.PaceSeconds)
		}
		if cfg.Display.CurveSpanKmh != 4 {
			t.Errorf("Display.CurveSpanKmh = %v, want 4", cfg.Display.CurveSpanKmh)
		}

		want := []pacing.Distance{{Label: "400m", Km: 0.4}, {Label: "1500m", Km: 1.5}}
		if diff := cmp.Diff(want, cfg.Distances()); diff != "" {
			t.Errorf("Distances() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCreateExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	written, err := CreateExample(path)
	if err != nil {
		t.Fatalf("CreateExample() unexpected error: %v", err)
	}
	if !written {
		t.Error("CreateExample() = false, want true for a new file")
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), *cfg); diff != "" {
		t.Errorf("example config mismatch (-want +got):\n%s", diff)
	}

	// Second call leaves the existing file alone
	written, err = CreateExample(path)
	if err != nil {
		t.Fatalf("CreateExample() unexpected error: %v", err)
	}
	if written {
		t.Error("CreateExample() = true, want false when config exists")
	}
}

func TestDistancesFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Splits.Distances = []string{"oops"}
	if diff := cmp.Diff(pacing.DefaultDistances, cfg.Distances()); diff != "" {
		t.Errorf("Distances() mismatch (-want +got):\n%s", diff)
	}
}
