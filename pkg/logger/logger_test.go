package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/FELTRINCyril/cinebase/internal/config"
)

func TestNewLoggerDevelopment(t *testing.T) {
	log := NewLogger(&config.Config{Env: config.EnvDev})

	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Development logger should enable debug level")
	}
}

func TestNewLoggerProduction(t *testing.T) {
	log := NewLogger(&config.Config{Env: config.EnvProd})

	if log.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Production logger should not enable debug level")
	}
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Production logger should enable info level")
	}
}
