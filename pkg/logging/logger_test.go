package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"invalid", InfoLevel}, // Default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDomainFieldConstructors(t *testing.T) {
	t.Run("RunID", func(t *testing.T) {
		f := RunID("abc-123")
		if f.Key != "run_id" || f.Value != "abc-123" {
			t.Errorf("RunID() = %+v", f)
		}
	})

	t.Run("Strategy", func(t *testing.T) {
		f := Strategy("degree-ascending")
		if f.Key != "strategy" || f.Value != "degree-ascending" {
			t.Errorf("Strategy() = %+v", f)
		}
	})

	t.Run("NodeID", func(t *testing.T) {
		f := NodeID("n42")
		if f.Key != "node_id" || f.Value != "n42" {
			t.Errorf("NodeID() = %+v", f)
		}
	})

	t.Run("FrontierIndex", func(t *testing.T) {
		f := FrontierIndex(1)
		if f.Key != "frontier" || f.Value != 1 {
			t.Errorf("FrontierIndex() = %+v", f)
		}
	})

	t.Run("Error", func(t *testing.T) {
		f := Error(errors.New("boom"))
		if f.Key != "error" || f.Value != "boom" {
			t.Errorf("Error() = %+v", f)
		}
	})

	t.Run("ErrorNil", func(t *testing.T) {
		f := Error(nil)
		if f.Key != "error" || f.Value != nil {
			t.Errorf("Error(nil) = %+v", f)
		}
	})
}

func TestJSONLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("run started", Strategy("fifo"), SeedCount(2))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("Level = %q, want INFO", entry.Level)
	}
	if entry.Message != "run started" {
		t.Errorf("Message = %q", entry.Message)
	}
	if entry.Fields["strategy"] != "fifo" {
		t.Errorf("strategy field = %v", entry.Fields["strategy"])
	}
	if entry.Fields["seed_count"] != float64(2) {
		t.Errorf("seed_count field = %v", entry.Fields["seed_count"])
	}
}

func TestJSONLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("Low-level messages should be filtered: %s", output)
	}
	if !strings.Contains(output, "visible") {
		t.Errorf("Warn message missing: %s", output)
	}
}

func TestJSONLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(RunID("r1"))
	child.Info("expanded")

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if entry.Fields["run_id"] != "r1" {
		t.Errorf("Child logger lost pre-set field: %v", entry.Fields)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	// Must not panic and With must stay a no-op.
	logger.Info("ignored", NodeID("x"))
	logger.With(RunID("r")).Error("also ignored")
	if logger.GetLevel() != InfoLevel {
		t.Errorf("NopLogger.GetLevel() = %v", logger.GetLevel())
	}
}
