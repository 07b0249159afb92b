package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"fichero/internal/infrastructure/storage"
)

const preferencesKey = "preferences"

type FontSize string

const (
	FontSizeSmall  FontSize = "pequeño"
	FontSizeMedium FontSize = "mediano"
	FontSizeLarge  FontSize = "grande"
)

func (f FontSize) Valid() bool {
	return f == FontSizeSmall || f == FontSizeMedium || f == FontSizeLarge
}

// Preferences is the presentation layer's configuration, handed to it by
// reference at startup. It replaces the mobile app's global context: mutation
// goes through setters that validate and persist.
type Preferences struct {
	kv  storage.KV
	log *slog.Logger
	mu  sync.RWMutex

	fontSize FontSize
	darkMode bool
}

type preferencesBlob struct {
	FontSize FontSize `json:"fontSize"`
	DarkMode bool     `json:"darkMode"`
}

// LoadPreferences reads stored preferences, falling back to defaults on any
// missing or unreadable blob.
func LoadPreferences(ctx context.Context, kv storage.KV, log *slog.Logger) *Preferences {
	p := &Preferences{kv: kv, log: log, fontSize: FontSizeMedium}

	blob, err := kv.Get(ctx, preferencesKey)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Warn("no se pudieron leer las preferencias", "error", err)
		}
		return p
	}

	var stored preferencesBlob
	if err := json.Unmarshal(blob, &stored); err != nil {
		log.Warn("preferencias corruptas, usando valores por defecto", "error", err)
		return p
	}
	if stored.FontSize.Valid() {
		p.fontSize = stored.FontSize
	}
	p.darkMode = stored.DarkMode
	return p
}

func (p *Preferences) FontSize() FontSize {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fontSize
}

func (p *Preferences) DarkMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.darkMode
}

func (p *Preferences) SetFontSize(ctx context.Context, size FontSize) error {
	if !size.Valid() {
		return fmt.Errorf("tamaño de letra inválido: %q", size)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	previous := p.fontSize
	p.fontSize = size
	if err := p.persist(ctx); err != nil {
		p.fontSize = previous
		return err
	}
	return nil
}

func (p *Preferences) SetDarkMode(ctx context.Context, enabled bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	previous := p.darkMode
	p.darkMode = enabled
	if err := p.persist(ctx); err != nil {
		p.darkMode = previous
		return err
	}
	return nil
}

func (p *Preferences) persist(ctx context.Context) error {
	blob, err := json.Marshal(preferencesBlob{FontSize: p.fontSize, DarkMode: p.darkMode})
	if err != nil {
		return fmt.Errorf("serialize preferences: %w", err)
	}
	if err := p.kv.Set(ctx, preferencesKey, blob); err != nil {
		return fmt.Errorf("persist preferences: %w", err)
	}
	return nil
}
