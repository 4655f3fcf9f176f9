// Package debug provides development logging for oklch16.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	enabled bool
	out     io.Writer
	logFile *os.File
	mu      sync.Mutex
	logPath string
	now     = time.Now
)

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	//nolint:gosec // G304: Path comes from configuration.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	logFile = f
	logPath = path
	start(f)
	return nil
}

// start must be called with mu held.
func start(w io.Writer) {
	out = w
	enabled = true

	timestamp := now().Format("15:04:05.000")
	writeLine(timestamp, "=== oklch16 Debug Session Started ===")
	writeLine(timestamp, "Time: "+now().Format(time.RFC3339))
	if logPath != "" {
		writeLine(timestamp, "Log file: "+logPath)
	}
}

// writeLine must be called with mu held.
func writeLine(timestamp, msg string) {
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if logFile != nil {
		_ = logFile.Sync() //nolint:errcheck // Best effort flush for tail -f.
	}
}

// Disable turns off debug logging and closes the file, if any.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}

	if logFile != nil {
		_ = logFile.Close() //nolint:errcheck // Nothing useful to do on close failure.
		logFile = nil
	}
	out = nil
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug message if logging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || out == nil {
		return
	}
	writeLine(now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// LogPath returns the path to the log file.
func LogPath() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Event logs an event with component context.
func Event(component, eventType, details string) {
	Log("[%s] %s: %s", component, eventType, details)
}

// Error logs an error with context.
func Error(component string, err error, context string) {
	Log("[%s] ERROR: %s - %v", component, context, err)
}
