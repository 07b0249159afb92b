package ficha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"fichero/internal/infrastructure/storage"
)

const storageKey = "fichas"

// Store keeps the whole ficha collection as one JSON array under a single
// storage key. Every operation is a read-modify-write over the full
// collection, which is O(n) per call and fine at the dozens-to-hundreds scale
// this app works at. The mutex serializes those cycles so two callers cannot
// silently drop each other's writes.
type Store struct {
	kv  storage.KV
	log *slog.Logger
	mu  sync.Mutex
}

func NewStore(kv storage.KV, log *slog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// LoadAll returns the stored collection. Loads are fail-open: a missing,
// unreadable or corrupt blob yields an empty collection, and entries that fail
// validation are dropped with a warning instead of failing the whole load.
func (s *Store) LoadAll(ctx context.Context) []Ficha {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll(ctx)
}

func (s *Store) loadAll(ctx context.Context) []Ficha {
	blob, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.Warn("no se pudieron leer las fichas", "error", err)
		}
		return []Ficha{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		s.log.Warn("colección de fichas corrupta, se ignora", "error", err)
		return []Ficha{}
	}

	fichas := make([]Ficha, 0, len(raw))
	for _, entry := range raw {
		var f Ficha
		if err := json.Unmarshal(entry, &f); err != nil {
			s.log.Warn("ficha ilegible descartada", "error", err)
			continue
		}
		if err := f.Validate(); err != nil {
			s.log.Warn("ficha inválida descartada", "id", f.ID, "error", err)
			continue
		}
		fichas = append(fichas, f)
	}
	return fichas
}

// SaveAll validates every ficha and overwrites the stored collection. Unlike
// the mobile original, a failed write is returned to the caller instead of
// being swallowed.
func (s *Store) SaveAll(ctx context.Context, fichas []Ficha) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAll(ctx, fichas)
}

func (s *Store) saveAll(ctx context.Context, fichas []Ficha) error {
	for i := range fichas {
		if err := fichas[i].Validate(); err != nil {
			return fmt.Errorf("ficha %d: %w", fichas[i].ID, err)
		}
	}

	blob, err := json.Marshal(fichas)
	if err != nil {
		return fmt.Errorf("serialize fichas: %w", err)
	}
	if err := s.kv.Set(ctx, storageKey, blob); err != nil {
		return fmt.Errorf("persist fichas: %w", err)
	}
	return nil
}

// Add appends a ficha to the collection. Duplicate technique names are allowed
// (the caller confirms those); duplicate ids are not checked for.
func (s *Store) Add(ctx context.Context, f Ficha) error {
	if err := f.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fichas := s.loadAll(ctx)
	fichas = append(fichas, f)
	return s.saveAll(ctx, fichas)
}

// FindByTechniqueName returns every ficha whose technique name matches,
// case-insensitively and ignoring surrounding whitespace.
func (s *Store) FindByTechniqueName(ctx context.Context, name string) []Ficha {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []Ficha
	for _, f := range s.loadAll(ctx) {
		if f.MatchesTechnique(name) {
			matches = append(matches, f)
		}
	}
	return matches
}

func (s *Store) ExistsByTechniqueName(ctx context.Context, name string) bool {
	return len(s.FindByTechniqueName(ctx, name)) > 0
}

// GetByTechniqueName returns the first match in collection order, or nil.
func (s *Store) GetByTechniqueName(ctx context.Context, name string) *Ficha {
	matches := s.FindByTechniqueName(ctx, name)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

func (s *Store) GetByID(ctx context.Context, id int64) *Ficha {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.loadAll(ctx) {
		if f.ID == id {
			return &f
		}
	}
	return nil
}

// EditByID replaces the ficha with the given id, keeping its id.
func (s *Store) EditByID(ctx context.Context, id int64, edited Ficha) error {
	edited.ID = id
	if err := edited.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fichas := s.loadAll(ctx)
	found := false
	for i := range fichas {
		if fichas[i].ID == id {
			fichas[i] = edited
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	return s.saveAll(ctx, fichas)
}

// EditByTechniqueName replaces every ficha matching the name with the same
// edited card, which is exactly what the mobile app did: with duplicate names
// all of them end up identical.
//
// Deprecated: use EditByID. This exists for parity with the original storage
// API only.
func (s *Store) EditByTechniqueName(ctx context.Context, name string, edited Ficha) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fichas := s.loadAll(ctx)
	for i := range fichas {
		if fichas[i].MatchesTechnique(name) {
			fichas[i] = edited
		}
	}
	return s.saveAll(ctx, fichas)
}

// DeleteByID removes the ficha with the given id. Deleting an id that does not
// exist is a no-op. Payments referencing the ficha are not touched; the
// presentation layer filters orphans.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fichas := s.loadAll(ctx)
	kept := fichas[:0]
	for _, f := range fichas {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	return s.saveAll(ctx, kept)
}
