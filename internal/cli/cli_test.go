package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trackpace/internal/logger"
)

// execute runs the command tree against a config path inside a temp dir
func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	cmd, opts := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := opts.execute(cmd)
	return out.String(), err
}

func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestConvertPace(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"5:00", "12.00 km/h\n"},
		{"4:30", "13.33 km/h\n"},
		{"6", "10.00 km/h\n"},
		{"0:00", "0.00 km/h\n"},
		{"fast", "0.00 km/h\n"},
		{"1e-310:00", "0.00 km/h\n"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := execute(t, tempConfigPath(t), "convert", "pace", tt.arg)
			if err != nil {
				t.Fatalf("convert pace %s: unexpected error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("convert pace %s = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestConvertSpeed(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"12", "5:00 min/km\n"},
		{"13", "4:37 min/km\n"},
		{"12.012", "5:00 min/km\n"},
		{"0", "0:00 min/km\n"},
		{"slow", "0:00 min/km\n"},
		{"1e-300", "0:00 min/km\n"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := execute(t, tempConfigPath(t), "convert", "speed", tt.arg)
			if err != nil {
				t.Fatalf("convert speed %s: unexpected error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("convert speed %s = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestConvertRequiresArgument(t *testing.T) {
	if _, err := execute(t, tempConfigPath(t), "convert", "pace"); err == nil {
		t.Error("convert pace without an argument should fail")
	}
}

func TestSplits(t *testing.T) {
	t.Run("by speed", func(t *testing.T) {
		got, err := execute(t, tempConfigPath(t), "splits", "--speed", "12")
		if err != nil {
			t.Fatalf("splits: unexpected error: %v", err)
		}
		for _, want := range []string{"Speed: 12.00 km/h  Pace: 5:00 min/km", "100m", "0:30", "10,000", "50:00"} {
			if !strings.Contains(got, want) {
				t.Errorf("splits output missing %q:\n%s", want, got)
			}
		}
		if strings.Index(got, "800m") > strings.Index(got, "3000m") {
			t.Errorf("splits out of order:\n%s", got)
		}
	})

	t.Run("by pace", func(t *testing.T) {
		got, err := execute(t, tempConfigPath(t), "splits", "--pace", "6:00")
		if err != nil {
			t.Fatalf("splits: unexpected error: %v", err)
		}
		if !strings.Contains(got, "Speed: 10.00 km/h") || !strings.Contains(got, "30:00") {
			t.Errorf("splits output:\n%s", got)
		}
	})

	t.Run("invalid speed", func(t *testing.T) {
		got, err := execute(t, tempConfigPath(t), "splits", "--speed", "0")
		if err != nil {
			t.Fatalf("splits: unexpected error: %v", err)
		}
		if !strings.Contains(got, "no splits") {
			t.Errorf("splits output = %q, want no splits", got)
		}
	})

	t.Run("needs speed or pace", func(t *testing.T) {
		if _, err := execute(t, tempConfigPath(t), "splits"); err == nil {
			t.Error("splits without --speed or --pace should fail")
		}
	})

	t.Run("speed and pace are exclusive", func(t *testing.T) {
		if _, err := execute(t, tempConfigPath(t), "splits", "--speed", "12", "--pace", "5:00"); err == nil {
			t.Error("splits with both --speed and --pace should fail")
		}
	})

	t.Run("custom distances from config", func(t *testing.T) {
		path := tempConfigPath(t)
		data := `{"splits": {"distances": ["400m", "1.5km"]}, "display": {"hide_distance_meters": true}}`
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := execute(t, path, "splits", "--speed", "12")
		if err != nil {
			t.Fatalf("splits: unexpected error: %v", err)
		}
		if !strings.Contains(got, "400m") || !strings.Contains(got, "1500m") || !strings.Contains(got, "7:30") {
			t.Errorf("splits output:\n%s", got)
		}
		if strings.Contains(got, "100m") || strings.Contains(got, "Meters") {
			t.Errorf("splits output should only use configured distances without meters:\n%s", got)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		path := tempConfigPath(t)
		if err := os.WriteFile(path, []byte(`{"calculator": {"mode": "walk"}}`), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := execute(t, path, "splits", "--speed", "12")
		if err == nil || !strings.Contains(err.Error(), "invalid config") {
			t.Errorf("splits with bad config error = %v, want invalid config", err)
		}
	})
}

func TestConfigInit(t *testing.T) {
	path := tempConfigPath(t)

	got, err := execute(t, path, "config", "init")
	if err != nil {
		t.Fatalf("config init: unexpected error: %v", err)
	}
	if !strings.Contains(got, "Wrote example config") {
		t.Errorf("config init output = %q", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}

	got, err = execute(t, path, "config", "init")
	if err != nil {
		t.Fatalf("config init: unexpected error: %v", err)
	}
	if !strings.Contains(got, "already exists") {
		t.Errorf("second config init output = %q", got)
	}
}

func TestDebugLogging(t *testing.T) {
	path := tempConfigPath(t)

	if _, err := execute(t, path, "--debug", "convert", "pace", "5:00"); err != nil {
		t.Fatalf("convert with --debug: unexpected error: %v", err)
	}

	logFile := filepath.Join(filepath.Dir(path), "logs", "trackpace.log")
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("expected log file at %s: %v", logFile, err)
	}
}

func TestDebugLoggingOnFailure(t *testing.T) {
	path := tempConfigPath(t)
	if err := os.WriteFile(path, []byte(`{"display": {"curve_span_kmh": -1}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, path, "--debug", "splits", "--speed", "12")
	if err == nil {
		t.Fatal("splits with bad config: expected error")
	}

	if logger.Path() != "" {
		t.Errorf("logger.Path() = %q after the command, want the log closed", logger.Path())
	}

	data, err := os.ReadFile(filepath.Join(filepath.Dir(path), "logs", "trackpace.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	for _, want := range []string{"command failed", "invalid config"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
}
