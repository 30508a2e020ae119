package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	SetLevel(Info)
	defer SetLevel(Notice)

	logger := New("test-module")
	logger.Debugf("hidden %d", 1)
	logger.Infof("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("Expected info message, got %q", out)
	}
	if !strings.Contains(out, "[test-module]") || !strings.Contains(out, "[INFO]") {
		t.Errorf("Expected module and level in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("visible now")
	if !strings.Contains(buf.String(), "visible now") {
		t.Errorf("Expected debug message after raising verbosity, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected Level
		valid    bool
	}{
		{"debug", Debug, true},
		{"INFO", Info, true},
		{"notice", Notice, true},
		{"warn", Warning, true},
		{"error", Error, true},
		{"loud", Notice, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			if (err == nil) != tc.valid {
				t.Fatalf("ParseLevel(%q) error = %v", tc.input, err)
			}
			if level != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, level, tc.expected)
			}
		})
	}
}
