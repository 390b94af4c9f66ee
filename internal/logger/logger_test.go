package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "seqtools-test.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)

	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(data)
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden %d", 1)
	Info("visible %s", "info")
	Warn("visible warn")
	Error("visible error")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden 1") {
		t.Error("debug message written at info level")
	}
	for _, want := range []string{"visible info", "visible warn", "visible error"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestSetDebug(t *testing.T) {
	logPath := setupTestLogger(t)

	SetDebug(true)
	Debug("debug now %s", "on")

	if !strings.Contains(readLog(t, logPath), "debug now on") {
		t.Error("debug message missing after SetDebug(true)")
	}
}

func TestComponentLogger(t *testing.T) {
	logPath := setupTestLogger(t)

	ComponentLogger("viewer").Info("session started", "sequences", 3)

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=viewer") {
		t.Errorf("component attribute missing: %q", content)
	}
	if !strings.Contains(content, "sequences=3") {
		t.Errorf("structured attribute missing: %q", content)
	}
}

func TestNoInit_DoesNotPanic(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Info("dropped")
	ComponentLogger("viewer").Info("dropped")
	Close()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
