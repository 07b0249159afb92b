package transfer

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fichero/internal/domain/ficha"
	"fichero/internal/infrastructure/storage"
)

func newTestService(t *testing.T) (*Service, *ficha.Store) {
	t.Helper()
	kv := storage.NewMemoryKV()
	fichas := ficha.NewStore(kv, slog.Default())
	return NewService(fichas, t.TempDir(), slog.Default()), fichas
}

func TestService_Import_EmptyObject(t *testing.T) {
	svc, fichas := newTestService(t)
	ctx := context.Background()

	result, err := svc.Import(ctx, []byte(`[{}]`))
	require.NoError(t, err)
	assert.Equal(t, Result{Total: 1, Defaulted: 1}, result)

	stored := fichas.LoadAll(ctx)
	require.Len(t, stored, 1)
	f := stored[0]
	assert.Positive(t, f.ID)
	assert.Equal(t, PlaceholderTechnique, f.TechniqueName)
	assert.Equal(t, PlaceholderDoctor, f.Doctor)
	assert.Equal(t, PlaceholderDescription, f.Description)
	assert.Equal(t, PlaceholderMaterials, f.Materials)
}

func TestService_Import_NotArray(t *testing.T) {
	svc, fichas := newTestService(t)
	ctx := context.Background()

	existing, err := ficha.New("Apendicectomía", "Dr. A", "desc", "trocar")
	require.NoError(t, err)
	require.NoError(t, fichas.Add(ctx, *existing))

	for _, input := range []string{`{"id":1}`, `"fichas"`, `ni siquiera json`} {
		_, err := svc.Import(ctx, []byte(input))
		assert.ErrorIs(t, err, ErrFormat, input)
	}

	// The failed imports left the collection untouched.
	stored := fichas.LoadAll(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, existing.ID, stored[0].ID)
}

func TestService_Import_ReplacesCollection(t *testing.T) {
	svc, fichas := newTestService(t)
	ctx := context.Background()

	old, err := ficha.New("Vieja", "Dr. A", "desc", "nada")
	require.NoError(t, err)
	require.NoError(t, fichas.Add(ctx, *old))

	input := `[
		{"id": 7, "nombre_tecnica": "Colecistectomía", "doctor": "Dr. B", "descripcion": "laparoscópica", "materiales": "clips"},
		{"nombre_tecnica": "Hernioplastia", "doctor": "Dr. C", "descripcion": "abierta", "materiales": "malla"}
	]`
	result, err := svc.Import(ctx, []byte(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Defaulted)

	stored := fichas.LoadAll(ctx)
	require.Len(t, stored, 2)
	assert.Equal(t, int64(7), stored[0].ID)
	assert.Equal(t, "Colecistectomía", stored[0].TechniqueName)
	assert.Positive(t, stored[1].ID)
	assert.NotEqual(t, int64(7), stored[1].ID)
	// The old collection is gone: import replaces, never merges.
	assert.False(t, fichas.ExistsByTechniqueName(ctx, "Vieja"))
}

func TestService_Import_DuplicateIDsRegenerated(t *testing.T) {
	svc, fichas := newTestService(t)
	ctx := context.Background()

	input := `[
		{"id": 5, "nombre_tecnica": "Una", "doctor": "Dr. A", "descripcion": "d", "materiales": "m"},
		{"id": 5, "nombre_tecnica": "Otra", "doctor": "Dr. B", "descripcion": "d", "materiales": "m"}
	]`
	result, err := svc.Import(ctx, []byte(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Defaulted)

	stored := fichas.LoadAll(ctx)
	require.Len(t, stored, 2)
	assert.NotEqual(t, stored[0].ID, stored[1].ID)
}

func TestService_Import_NonObjectEntries(t *testing.T) {
	svc, fichas := newTestService(t)
	ctx := context.Background()

	result, err := svc.Import(ctx, []byte(`[42, "texto", null]`))
	require.NoError(t, err)
	assert.Equal(t, Result{Total: 3, Defaulted: 3}, result)
	assert.Len(t, fichas.LoadAll(ctx), 3)
}

func TestService_Export(t *testing.T) {
	svc, fichas := newTestService(t)
	ctx := context.Background()

	f, err := ficha.New("Apendicectomía", "Dr. A", "desc", "trocar")
	require.NoError(t, err)
	require.NoError(t, fichas.Add(ctx, *f))

	path, count, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, ExportFilename, filepath.Base(path))

	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	// Pretty-printed with 2-space indent.
	assert.True(t, strings.Contains(string(blob), "\n  {") || strings.HasPrefix(string(blob), "[\n  "))

	var exported []ficha.Ficha
	require.NoError(t, json.Unmarshal(blob, &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, *f, exported[0])
}

func TestService_ExportImportRoundTrip(t *testing.T) {
	svc, fichas := newTestService(t)
	ctx := context.Background()

	f, err := ficha.New("Apendicectomía", "Dr. A", "desc", "trocar")
	require.NoError(t, err)
	require.NoError(t, fichas.Add(ctx, *f))

	path, _, err := svc.Export(ctx)
	require.NoError(t, err)

	blob, err := os.ReadFile(path)
	require.NoError(t, err)

	result, err := svc.Import(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, Result{Total: 1, Defaulted: 0}, result)

	stored := fichas.LoadAll(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, *f, stored[0])
}
