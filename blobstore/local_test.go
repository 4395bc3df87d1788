package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Put(ctx, "nested/data.csv", []byte("set,element\n1,2\n")))

	r, err := store.Open(ctx, "nested/data.csv")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "set,element\n1,2\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "a", []byte("first")))
	require.NoError(t, store.Put(ctx, "a", []byte("second")))

	r, err := store.Open(ctx, "a")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "a", []byte("x")), context.Canceled)
	_, err := store.Open(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Open(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	buf := []byte("hello")
	require.NoError(t, store.Put(ctx, "x", buf))
	buf[0] = 'j'

	r, err := store.Open(ctx, "x")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Put(ctx, "a", nil))
	require.NoError(t, store.Put(ctx, "data/b.csv", nil))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "data/b.csv", "x"}, names)

	names, err = store.List(ctx, "data/")
	require.NoError(t, err)
	assert.Equal(t, []string{"data/b.csv"}, names)
}

func TestLocalStore_List(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "sets/b.csv", []byte("b")))
	require.NoError(t, store.Put(ctx, "sets/a.csv.zst", []byte("a")))
	require.NoError(t, store.Put(ctx, "other.csv", []byte("o")))

	names, err := store.List(ctx, "sets/")
	require.NoError(t, err)
	assert.Equal(t, []string{"sets/a.csv.zst", "sets/b.csv"}, names)
}

var (
	_ Store  = (*LocalStore)(nil)
	_ Store  = (*MemoryStore)(nil)
	_ Lister = (*LocalStore)(nil)
	_ Lister = (*MemoryStore)(nil)
)
