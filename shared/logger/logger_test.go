package logger_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"atelier/config"
	"atelier/shared/logger"
)

func TestInitLogger(t *testing.T) {
	logger.InitLogger()

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level to be trace, got %s", zerolog.GlobalLevel())
	}
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{
			name:     "valid level",
			logLevel: "warn",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "another valid level",
			logLevel: "error",
			expected: zerolog.ErrorLevel,
		},
		{
			name:     "invalid level falls back to trace",
			logLevel: "shout",
			expected: zerolog.TraceLevel,
		},
		{
			name:     "empty level uses NoLevel",
			logLevel: "",
			expected: zerolog.NoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expected {
				t.Errorf("expected global level to be %s, got %s", tt.expected, zerolog.GlobalLevel())
			}
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	// must not panic regardless of input
	logger.ErrorWithStack(errors.New("boom"))
	logger.ErrorWithStack(nil)
}
