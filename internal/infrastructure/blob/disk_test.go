package blob

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStore_WriteRead(t *testing.T) {
	root := t.TempDir()
	store, err := New(zap.NewNop(), filepath.Join(root, "blobs"))
	require.NoError(t, err)

	path, err := store.Write([]byte("hello"))
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, filepath.Join(root, "blobs"), filepath.Dir(path))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	// each write gets a fresh path
	other, err := store.Write([]byte("hello"))
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}

func TestStore_Exists(t *testing.T) {
	store, err := New(zap.NewNop(), t.TempDir())
	require.NoError(t, err)

	path, err := store.Write(nil)
	require.NoError(t, err)

	assert.True(t, store.Exists(path))
	assert.False(t, store.Exists(path+"_500"))
}

func TestStore_WriteAtOverwrites(t *testing.T) {
	store, err := New(zap.NewNop(), t.TempDir())
	require.NoError(t, err)

	path, err := store.Write([]byte("original"))
	require.NoError(t, err)

	variant := path + "_250"
	require.NoError(t, store.WriteAt(variant, []byte("v1")))
	require.NoError(t, store.WriteAt(variant, []byte("v2")))

	got, err := store.Read(variant)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	// the original is untouched
	got, err = store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestNew_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b")
	store, err := New(zap.NewNop(), root)
	require.NoError(t, err)

	path, err := store.Write([]byte("x"))
	require.NoError(t, err)
	assert.True(t, store.Exists(path))
}
