package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    log.Level
		wantErr bool
	}{
		{"empty", "", log.InfoLevel, false},
		{"debug", "debug", log.DebugLevel, false},
		{"upper case", "WARN", log.WarnLevel, false},
		{"padded", " error ", log.ErrorLevel, false},
		{"unknown", "loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q): got %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestInit_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Init("warn", &buf)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "path", "a.bruh")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "a.bruh") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	if _, err := Init("verbose", &bytes.Buffer{}); err == nil {
		t.Error("Init should fail for an unknown level")
	}
}
