package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Config controls where and how much the logger writes
type Config struct {
	Dir   string // base directory; the log lives in <Dir>/logs/trackpace.log
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = zap.NewNop()
	logPath string
)

// Setup installs the global logger. Without Debug the logger discards
// everything, since the terminal belongs to the UI. The returned cleanup
// flushes the file and restores the no-op logger.
func Setup(cfg Config) (func() error, error) {
	if !cfg.Debug {
		setNop()
		return func() error { return nil }, nil
	}

	dir := filepath.Join(filepath.Clean(cfg.Dir), "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setNop()
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	path := filepath.Join(dir, "trackpace.log")

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Encoding = "json"
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}

	l, err := zcfg.Build()
	if err != nil {
		setNop()
		return nil, fmt.Errorf("building logger: %w", err)
	}

	mu.Lock()
	global = l
	logPath = path
	mu.Unlock()

	l.Info("logger initialized", zap.String("path", path))

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		// Sync on a file sink only fails for real I/O errors
		err := global.Sync()
		global = zap.NewNop()
		logPath = ""
		return err
	}

	return cleanup, nil
}

// L returns the current logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path returns the active log file, or "" when logging is disabled
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setNop() {
	mu.Lock()
	defer mu.Unlock()
	global = zap.NewNop()
	logPath = ""
}
