// Package logging provides subsystem-scoped structured logging for the
// editor shell. Output goes to a file rather than stderr so log lines never
// bleed into the terminal UI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFile = "editkit.log"

// EnvLogFile overrides the log destination (for tests and debugging).
const EnvLogFile = "EDITKIT_LOG_FILE"

// EnvLogLevel sets the minimum level: debug, info, warn, error.
const EnvLogLevel = "EDITKIT_LOG_LEVEL"

var (
	mu      sync.Mutex
	root    *slog.Logger
	closer  io.Closer
	leveler = new(slog.LevelVar)
)

// Configure opens the log destination and installs the root logger.
// An empty path falls back to EDITKIT_LOG_FILE, then the default file.
// Safe to call more than once; the previous destination is closed.
func Configure(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = os.Getenv(EnvLogFile)
	}
	if path == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if closer != nil {
		closer.Close()
	}
	closer = f

	leveler.Set(levelFromEnv())
	root = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: leveler}))
	return nil
}

// For returns a logger scoped to the given subsystem (e.g. "menu", "dock").
// Before Configure is called, loggers discard everything.
func For(subsystem string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return root.With("subsystem", subsystem)
}

// SetLevel adjusts the minimum level at runtime.
func SetLevel(level slog.Level) {
	leveler.Set(level)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv(EnvLogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
