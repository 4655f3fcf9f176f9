package debug

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	//nolint:gosec // Test reads its own temp file.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	return string(data)
}

func TestEnable(t *testing.T) {
	fixedClock(t)
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	t.Cleanup(Disable)

	if !IsEnabled() {
		t.Fatal("expected logging to be enabled")
	}
	if got := LogPath(); got != path {
		t.Errorf("expected log path %s, got %s", path, got)
	}

	Event("palette", "generate", "normal red = #ff6852")
	Error("config", errors.New("boom"), "loading config")
	Log("plain %d", 42)
	Disable()

	out := readLog(t, path)
	for _, want := range []string{
		"[12:30:45.000] === oklch16 Debug Session Started ===",
		"[12:30:45.000] Log file: " + path,
		"[12:30:45.000] [palette] generate: normal red = #ff6852",
		"[12:30:45.000] [config] ERROR: loading config - boom",
		"[12:30:45.000] plain 42",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestEnable_Twice(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	if err := Enable(first); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	t.Cleanup(Disable)
	if err := Enable(second); err != nil {
		t.Fatalf("second Enable() error = %v", err)
	}

	if got := LogPath(); got != first {
		t.Errorf("expected log path to stay %s, got %s", first, got)
	}
	if _, err := os.Stat(second); !os.IsNotExist(err) {
		t.Error("expected second log file not to be created")
	}
}

func TestLogWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	Disable()

	Log("should not appear")

	if strings.Contains(readLog(t, path), "should not appear") {
		t.Error("expected no output after Disable")
	}
	if IsEnabled() {
		t.Error("expected logging to be disabled")
	}
}

func TestEnable_BadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Enable(filepath.Join(file, "debug.log")); err == nil {
		Disable()
		t.Fatal("expected error when the log directory is a file")
	}
	if IsEnabled() {
		t.Error("expected logging to stay disabled")
	}
}
