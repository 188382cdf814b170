package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the default logger into a buffer for the duration of the test.
func captureLogs(t *testing.T, level LogLevel, format Format) *bytes.Buffer {
	t.Helper()
	original := defaultLogger
	t.Cleanup(func() {
		defaultLogger = original
		slog.SetDefault(original)
	})

	var buf bytes.Buffer
	Setup(&buf, level, format)
	return &buf
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		level    LogLevel
		expected slog.Level
	}{
		{name: "Debug level", level: LevelDebug, expected: slog.LevelDebug},
		{name: "Info level", level: LevelInfo, expected: slog.LevelInfo},
		{name: "Warn level", level: LevelWarn, expected: slog.LevelWarn},
		{name: "Error level", level: LevelError, expected: slog.LevelError},
		{name: "Upper case is accepted", level: LogLevel("DEBUG"), expected: slog.LevelDebug},
		{name: "Invalid level defaults to Info", level: LogLevel("invalid"), expected: slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.level))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, LevelWarn, FormatText)

	Debug("debug message")
	Info("info message")
	Warn("warn message", "key", "value")
	Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "error message")
}

func TestJSONFormat(t *testing.T) {
	buf := captureLogs(t, LevelInfo, FormatJSON)

	Info("mock authentication successful", "email", "demo@example.com")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "mock authentication successful", entry["msg"])
	assert.Equal(t, "demo@example.com", entry["email"])
}

func TestPrintfAdapter(t *testing.T) {
	buf := captureLogs(t, LevelDebug, FormatText)

	p := Printf{Component: "badger"}
	p.Errorf("compaction failed: %s\n", "disk full")
	p.Warningf("slow write")
	p.Infof("opened %d tables", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "level=ERROR")
	assert.Contains(t, lines[0], `msg="compaction failed: disk full"`)
	assert.Contains(t, lines[0], "component=badger")
	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[2], "level=DEBUG")
	assert.Contains(t, lines[2], "opened 3 tables")
}

func TestGetLogger(t *testing.T) {
	require.NotNil(t, GetLogger())
}

func TestMaskSensitive(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty string", input: "", expected: "<not set>"},
		{name: "Short string", input: "abc", expected: "<set>"},
		{name: "Exactly 4 characters", input: "abcd", expected: "<set>"},
		{name: "Token-like string", input: "demo-token-123", expected: "demo...***"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskSensitive(tc.input))
		})
	}
}

func TestOpenLogFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	f, err := OpenLogFile(dir, "jiradash", now)
	require.NoError(t, err)
	_, err = f.WriteString("first\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// A second open appends to the same file
	f, err = OpenLogFile(dir, "jiradash", now)
	require.NoError(t, err)
	_, err = f.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "jiradash-2026-03-10.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}
