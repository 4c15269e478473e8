// Copyright 2025 The u-code Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	logger := New(Options{})
	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.out != os.Stderr {
		t.Error("default output is not stderr")
	}
	if _, ok := logger.formatter.(*TextFormatter); !ok {
		t.Errorf("default formatter = %T, want *TextFormatter", logger.formatter)
	}
}

func TestNewWithOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelWarn,
		Format: FormatJSON,
		Output: &buf,
	})

	if logger.GetLevel() != LevelWarn {
		t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), LevelWarn)
	}
	if _, ok := logger.formatter.(*JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *JSONFormatter", logger.formatter)
	}
}

func TestNewWithCustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:     LevelDebug,
		Format:    FormatJSON, // ignored when Formatter is set
		Formatter: &TextFormatter{ShowLevel: true},
		Output:    &buf,
	})

	logger.Info("test")

	if output := buf.String(); !strings.Contains(output, "[INFO]") {
		t.Errorf("custom formatter not used, got %q", output)
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		logFn    func(Logger)
		expected string
	}{
		{
			name:     "info shows at info level",
			level:    LevelInfo,
			logFn:    func(l Logger) { l.Info("hello %s", "world") },
			expected: "hello world\n",
		},
		{
			name:     "debug suppressed at info level",
			level:    LevelInfo,
			logFn:    func(l Logger) { l.Debug("hidden") },
			expected: "",
		},
		{
			name:     "debug shows at debug level",
			level:    LevelDebug,
			logFn:    func(l Logger) { l.Debug("shown") },
			expected: "shown\n",
		},
		{
			name:     "warn suppressed at error level",
			level:    LevelError,
			logFn:    func(l Logger) { l.Warn("hidden") },
			expected: "",
		},
		{
			name:     "error suppressed at silent level",
			level:    LevelSilent,
			logFn:    func(l Logger) { l.Error("hidden") },
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Options{
				Level:  tt.level,
				Format: FormatText,
				Output: &buf,
			})

			tt.logFn(logger)

			if buf.String() != tt.expected {
				t.Errorf("output = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("should not appear")
	if buf.Len() > 0 {
		t.Errorf("Debug() suppressed at info level, got %q", buf.String())
	}

	logger.SetLevel(LevelDebug)
	logger.Debug("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("Debug() after SetLevel(LevelDebug) missing, got %q", buf.String())
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelSilent, "silent"},
		{LogLevel(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"  debug  ", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"silent", LevelSilent},
		{"none", LevelSilent},
		{"off", LevelSilent},
		{"invalid", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected LogFormat
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"plain", FormatText},
		{"invalid", FormatText},
		{"", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogFormat(tt.input); got != tt.expected {
				t.Errorf("ParseLogFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message")

	var entry jsonEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("JSON output not parseable: %v", err)
	}

	if entry.Level != "info" {
		t.Errorf("JSON level = %q, want %q", entry.Level, "info")
	}
	if entry.Message != "test message" {
		t.Errorf("JSON message = %q, want %q", entry.Message, "test message")
	}
	if entry.Timestamp == "" {
		t.Error("JSON timestamp is empty, want RFC3339 time")
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.WithFields(map[string]interface{}{
		"algorithm": "sha256",
		"size":      32,
	}).Info("computed")

	var entry jsonEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("JSON output not parseable: %v", err)
	}

	if entry.Fields == nil {
		t.Fatal("JSON fields missing")
	}
	if entry.Fields["algorithm"] != "sha256" {
		t.Errorf("field algorithm = %v, want %q", entry.Fields["algorithm"], "sha256")
	}
	if entry.Fields["size"] != float64(32) { // JSON numbers are float64
		t.Errorf("field size = %v, want 32", entry.Fields["size"])
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := New(Options{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &parentBuf,
	})

	child := parent.WithField("key", "value")
	child.(*DefaultLogger).SetOutput(&childBuf)

	parent.Info("parent message")
	child.Info("child message")

	var parentEntry jsonEntry
	if err := json.Unmarshal(parentBuf.Bytes(), &parentEntry); err != nil {
		t.Fatalf("parent JSON output not parseable: %v", err)
	}
	if parentEntry.Fields != nil {
		t.Errorf("parent logger has fields %v, want none", parentEntry.Fields)
	}

	var childEntry jsonEntry
	if err := json.Unmarshal(childBuf.Bytes(), &childEntry); err != nil {
		t.Fatalf("child JSON output not parseable: %v", err)
	}
	if childEntry.Fields == nil || childEntry.Fields["key"] != "value" {
		t.Errorf("child logger fields = %v, want key=value", childEntry.Fields)
	}
}

func TestTextFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:  LevelDebug,
		Format: FormatText,
		Output: &buf,
	})

	logger.WithFields(map[string]interface{}{
		"zebra": 1,
		"alpha": 2,
		"mike":  3,
	}).Info("sorted")

	want := "sorted {alpha=2, mike=3, zebra=1}\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTextShowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:     LevelDebug,
		Format:    FormatText,
		Output:    &buf,
		ShowLevel: true,
	})

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	output := buf.String()
	for _, prefix := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(output, prefix) {
			t.Errorf("output missing %s: %q", prefix, output)
		}
	}
}

func TestEnsureLogger(t *testing.T) {
	if l := EnsureLogger(nil); l == nil {
		t.Fatal("EnsureLogger(nil) returned nil")
	}

	custom := New(Options{Level: LevelDebug})
	if got := EnsureLogger(custom); got != custom {
		t.Error("EnsureLogger() did not return the provided logger")
	}
}

func TestDefaultHelper(t *testing.T) {
	l := Default()
	if l == nil {
		t.Fatal("Default() returned nil")
	}
	if l.GetLevel() != LevelInfo {
		t.Errorf("Default().GetLevel() = %v, want %v", l.GetLevel(), LevelInfo)
	}
}
