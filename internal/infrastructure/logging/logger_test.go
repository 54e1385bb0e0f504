package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
		want   zerolog.Level
	}{
		{"json info", "info", "json", zerolog.InfoLevel},
		{"console debug", "debug", "console", zerolog.DebugLevel},
		{"warn", "warn", "json", zerolog.WarnLevel},
		{"unknown level falls back to info", "loud", "json", zerolog.InfoLevel},
		{"uppercase level", "ERROR", "json", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level, tt.format)
			if logger.GetLevel() != tt.want {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.want)
			}
		})
	}
}
