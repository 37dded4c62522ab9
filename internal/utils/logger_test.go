// internal/utils/logger_test.go
package utils

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"ERROR", ErrorLevel},
		{"", InfoLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Fatalf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger := &SimpleLogger{
		level:  WarnLevel,
		fields: make(map[string]interface{}),
		out:    &buf,
	}

	logger.Debug("not shown")
	logger.Info("not shown either")
	logger.Warn("shown")
	logger.Error("also shown")

	output := buf.String()
	if strings.Contains(output, "not shown") {
		t.Fatalf("Expected sub-level messages to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "[WARN] shown") {
		t.Fatalf("Expected warn message in output, got: %s", output)
	}
	if !strings.Contains(output, "[ERROR] also shown") {
		t.Fatalf("Expected error message in output, got: %s", output)
	}
}

func TestLogger_WithField(t *testing.T) {
	var buf strings.Builder
	base := &SimpleLogger{
		level:  InfoLevel,
		fields: make(map[string]interface{}),
		out:    &buf,
	}

	base.WithField("target", "catalog").Info("pass complete")

	output := buf.String()
	if !strings.Contains(output, "target=catalog") {
		t.Fatalf("Expected field in output, got: %s", output)
	}

	// The base logger is unchanged.
	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "target=") {
		t.Fatalf("Expected base logger without fields, got: %s", buf.String())
	}
}
