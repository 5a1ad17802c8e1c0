package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(Config{Level: "warn", Format: "text"}, &buf)
	if closer != nil {
		t.Error("closer should be nil without a file")
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn record missing")
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Config{Level: "info", Format: "json"}, &buf)
	logger.Info("hello", slog.Int("banner_id", 7))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "hello" {
		t.Errorf("msg = %v", rec["msg"])
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fanart.log")
	logger, closer := New(Config{Level: "info", FilePath: path}, nil)
	if closer == nil {
		t.Fatal("closer should not be nil with a file")
	}

	logger.Info("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}

func TestValid(t *testing.T) {
	if !ValidLevel("debug") || ValidLevel("trace") {
		t.Error("ValidLevel mismatch")
	}
	if !ValidFormat("json") || ValidFormat("xml") {
		t.Error("ValidFormat mismatch")
	}
}
