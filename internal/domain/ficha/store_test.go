package ficha

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fichero/internal/infrastructure/storage"
)

func newTestStore() (*Store, *storage.MemoryKV) {
	kv := storage.NewMemoryKV()
	return NewStore(kv, slog.Default()), kv
}

func validFicha(id int64, technique string) Ficha {
	return Ficha{
		ID:            id,
		TechniqueName: technique,
		Doctor:        "Dr. García",
		Description:   "Abordaje laparoscópico estándar",
		Materials:     "Trocar 5mm, grapadora lineal",
	}
}

func TestStore_AddRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	f := validFicha(100, "Apendicectomía")
	require.NoError(t, store.Add(ctx, f))

	fichas := store.LoadAll(ctx)
	require.Len(t, fichas, 1)
	assert.Equal(t, f, fichas[0])
}

func TestStore_Add_Invalid(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	f := validFicha(100, "   ")
	err := store.Add(ctx, f)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Empty(t, store.LoadAll(ctx))
}

func TestStore_SaveAllLoadAllIdempotent(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	fichas := []Ficha{
		validFicha(1, "Apendicectomía"),
		validFicha(2, "Colecistectomía"),
	}
	require.NoError(t, store.SaveAll(ctx, fichas))
	assert.Equal(t, fichas, store.LoadAll(ctx))

	require.NoError(t, store.SaveAll(ctx, store.LoadAll(ctx)))
	assert.Equal(t, fichas, store.LoadAll(ctx))
}

func TestStore_SaveAll_RejectsInvalidEntry(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, validFicha(1, "Apendicectomía")))

	invalid := validFicha(2, "Colecistectomía")
	invalid.Doctor = ""
	err := store.SaveAll(ctx, []Ficha{validFicha(1, "Apendicectomía"), invalid})
	assert.ErrorIs(t, err, ErrInvalidData)

	// Nothing was partially applied.
	assert.Len(t, store.LoadAll(ctx), 1)
}

func TestStore_LoadAll_Empty(t *testing.T) {
	store, _ := newTestStore()
	assert.Empty(t, store.LoadAll(context.Background()))
}

func TestStore_LoadAll_CorruptBlob(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "fichas", []byte(`{"not":"an array"`)))
	assert.Empty(t, store.LoadAll(ctx))

	require.NoError(t, kv.Set(ctx, "fichas", []byte(`{"not":"an array"}`)))
	assert.Empty(t, store.LoadAll(ctx))
}

func TestStore_LoadAll_DropsInvalidEntries(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	blob := []byte(`[
		{"id":1,"nombre_tecnica":"Apendicectomía","doctor":"Dr. A","descripcion":"ok","materiales":""},
		{"id":"texto","nombre_tecnica":"Rota","doctor":"Dr. B","descripcion":"tipo de id inválido","materiales":""},
		{"id":3,"nombre_tecnica":"","doctor":"Dr. C","descripcion":"sin técnica","materiales":""}
	]`)
	require.NoError(t, kv.Set(ctx, "fichas", blob))

	fichas := store.LoadAll(ctx)
	require.Len(t, fichas, 1)
	assert.Equal(t, int64(1), fichas[0].ID)
}

func TestStore_FindByTechniqueName(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, validFicha(1, "foo")))
	require.NoError(t, store.Add(ctx, validFicha(2, "foobar")))

	matches := store.FindByTechniqueName(ctx, "  Foo ")
	require.Len(t, matches, 1)
	assert.Equal(t, int64(1), matches[0].ID)

	// Exact match, not substring.
	assert.Empty(t, store.FindByTechniqueName(ctx, "foob"))
	assert.True(t, store.ExistsByTechniqueName(ctx, "FOO"))
	assert.False(t, store.ExistsByTechniqueName(ctx, "baz"))
}

func TestStore_GetByTechniqueName_FirstMatch(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	first := validFicha(1, "Hernioplastia")
	second := validFicha(2, "hernioplastia")
	require.NoError(t, store.Add(ctx, first))
	require.NoError(t, store.Add(ctx, second))

	got := store.GetByTechniqueName(ctx, "HERNIOPLASTIA")
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	assert.Nil(t, store.GetByTechniqueName(ctx, "inexistente"))
}

func TestStore_EditByID(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, validFicha(1, "Apendicectomía")))

	edited := validFicha(999, "Apendicectomía laparoscópica")
	require.NoError(t, store.EditByID(ctx, 1, edited))

	got := store.GetByID(ctx, 1)
	require.NotNil(t, got)
	assert.Equal(t, "Apendicectomía laparoscópica", got.TechniqueName)
	// The id cannot be changed through an edit.
	assert.Equal(t, int64(1), got.ID)
}

func TestStore_EditByID_NotFound(t *testing.T) {
	store, _ := newTestStore()
	err := store.EditByID(context.Background(), 42, validFicha(42, "Apendicectomía"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_EditByTechniqueName_ReplacesAllMatches(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, validFicha(1, "Hernioplastia")))
	require.NoError(t, store.Add(ctx, validFicha(2, "hernioplastia")))

	edited := validFicha(7, "Hernioplastia abierta")
	require.NoError(t, store.EditByTechniqueName(ctx, "HERNIOPLASTIA", edited))

	fichas := store.LoadAll(ctx)
	require.Len(t, fichas, 2)
	for _, f := range fichas {
		assert.Equal(t, edited, f)
	}
}

func TestStore_DeleteByID(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, validFicha(1, "Apendicectomía")))
	require.NoError(t, store.Add(ctx, validFicha(2, "Colecistectomía")))

	require.NoError(t, store.DeleteByID(ctx, 1))
	fichas := store.LoadAll(ctx)
	require.Len(t, fichas, 1)
	assert.Equal(t, int64(2), fichas[0].ID)

	// Deleting a nonexistent id is a no-op, not an error.
	require.NoError(t, store.DeleteByID(ctx, 99))
	assert.Len(t, store.LoadAll(ctx), 1)
}

func TestNew_RequiresMaterials(t *testing.T) {
	_, err := New("Apendicectomía", "Dr. A", "desc", "   ")
	assert.ErrorIs(t, err, ErrInvalidData)

	f, err := New(" Apendicectomía ", "Dr. A", "desc", "trocar")
	require.NoError(t, err)
	assert.Equal(t, "Apendicectomía", f.TechniqueName)
	assert.Positive(t, f.ID)
}
