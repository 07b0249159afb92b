package client

import (
	"context"
	"log/slog"

	"fichero/internal/app/client/config"
	"fichero/internal/domain/ficha"
	"fichero/internal/domain/pago"
	"fichero/internal/domain/transfer"
	"fichero/internal/infrastructure/storage"
	"fichero/internal/infrastructure/storage/sqlite"
)

// App wires the stores and services the presentation layer works against.
type App struct {
	config *config.Config
	log    *slog.Logger
	kv     storage.KV

	Fichas   *ficha.Store
	Pagos    *pago.Store
	Transfer *transfer.Service
	Prefs    *Preferences
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	var kv storage.KV
	sqliteKV, err := sqlite.New(cfg.DataPath)
	if err != nil {
		// Same policy as a device whose storage is unavailable: stay usable,
		// just without persistence.
		log.Warn("no se pudo abrir el almacenamiento local, usando memoria", "error", err)
		kv = storage.NewMemoryKV()
	} else {
		kv = sqliteKV
	}

	return NewWithStorage(cfg, log, kv), nil
}

// NewWithStorage builds the app over an explicit KV. Tests use it with the
// in-memory store.
func NewWithStorage(cfg *config.Config, log *slog.Logger, kv storage.KV) *App {
	fichas := ficha.NewStore(kv, log)
	app := &App{
		config:   cfg,
		log:      log,
		kv:       kv,
		Fichas:   fichas,
		Pagos:    pago.NewStore(kv, log),
		Transfer: transfer.NewService(fichas, cfg.ExportDir, log),
	}
	app.Prefs = LoadPreferences(context.Background(), kv, log)
	return app
}

func (a *App) Close() error {
	return a.kv.Close()
}
