package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heartmarshall/moviesearch/internal/config"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	log, closer, err := NewLogger(config.LogConfig{Level: "info", Format: "text", File: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	log.Info("search recorded", "kind", "keyword")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "search recorded") {
		t.Errorf("log file does not contain the record: %q", data)
	}
}

func TestNewLogger_StderrWhenFileEmpty(t *testing.T) {
	log, closer, err := NewLogger(config.LogConfig{Level: "debug", File: ""})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer closer.Close()

	if log == nil {
		t.Fatal("nil logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
