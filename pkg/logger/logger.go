package logger

import (
	"log/slog"
	"os"

	"github.com/FELTRINCyril/cinebase/internal/config"
)

// NewLogger builds the application logger for the configured environment.
// Development logs readable text at debug level, production logs JSON at info.
func NewLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
