package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fichero/internal/domain/ficha"
)

// ExportFilename is the fixed name of the backup file; the platform share
// step (MIME application/json) is the presentation layer's job.
const ExportFilename = "fichas_export.json"

// Service round-trips the ficha collection through a JSON backup file.
type Service struct {
	fichas    *ficha.Store
	log       *slog.Logger
	exportDir string
	nextID    func() int64
}

func NewService(fichas *ficha.Store, exportDir string, log *slog.Logger) *Service {
	return &Service{
		fichas:    fichas,
		log:       log,
		exportDir: exportDir,
		nextID:    newIDSequence(),
	}
}

// newIDSequence hands out unique timestamp-derived ids. Normalizing a batch of
// id-less entries within the same millisecond must still produce distinct ids.
func newIDSequence() func() int64 {
	last := int64(0)
	return func() int64 {
		id := time.Now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		last = id
		return id
	}
}

// Result reports an import back to the caller.
type Result struct {
	Total     int // fichas now in the collection
	Defaulted int // entries that needed placeholder or id defaulting
}

// Export writes the whole collection, pretty-printed, into the export
// directory and returns the file path and how many fichas it holds.
func (s *Service) Export(ctx context.Context) (string, int, error) {
	fichas := s.fichas.LoadAll(ctx)

	blob, err := json.MarshalIndent(fichas, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("serialize fichas: %w", err)
	}

	if err := os.MkdirAll(s.exportDir, 0o700); err != nil {
		return "", 0, fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(s.exportDir, ExportFilename)
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return "", 0, fmt.Errorf("write export file: %w", err)
	}

	s.log.Info("fichas exportadas", "count", len(fichas), "path", path)
	return path, len(fichas), nil
}

// Import parses the file contents and REPLACES the stored collection with the
// normalized entries. This is destructive: nothing is merged. Every element is
// normalized into a valid ficha, so one malformed entry never fails the batch;
// only non-JSON or non-array content does, in which case the existing
// collection is left untouched.
func (s *Service) Import(ctx context.Context, data []byte) (Result, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	entries, ok := parsed.([]any)
	if !ok {
		return Result{}, fmt.Errorf("%w: se esperaba un arreglo de fichas", ErrFormat)
	}

	seen := make(map[int64]bool, len(entries))
	fichas := make([]ficha.Ficha, 0, len(entries))
	defaulted := 0
	for _, entry := range entries {
		f, wasDefaulted := normalize(entry, s.nextID, seen)
		if wasDefaulted {
			defaulted++
		}
		fichas = append(fichas, f)
	}

	if err := s.fichas.SaveAll(ctx, fichas); err != nil {
		return Result{}, err
	}

	s.log.Info("fichas importadas", "total", len(fichas), "defaulted", defaulted)
	return Result{Total: len(fichas), Defaulted: defaulted}, nil
}
