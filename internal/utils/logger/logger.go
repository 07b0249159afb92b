package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"fichero/internal/app/client/config"
)

// New returns the logger for the given environment: pretty debug output for
// local work, JSON for dev and prod.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
}
