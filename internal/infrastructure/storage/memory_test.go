package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_GetMissing(t *testing.T) {
	kv := NewMemoryKV()

	_, err := kv.Get(context.Background(), "fichas")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryKV_SetGetDelete(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "fichas", []byte(`[]`)))

	got, err := kv.Get(ctx, "fichas")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, kv.Delete(ctx, "fichas"))
	_, err = kv.Get(ctx, "fichas")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryKV_GetReturnsCopy(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "fichas", []byte(`[1]`)))

	got, err := kv.Get(ctx, "fichas")
	require.NoError(t, err)
	got[1] = '9'

	again, err := kv.Get(ctx, "fichas")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), again)
}
