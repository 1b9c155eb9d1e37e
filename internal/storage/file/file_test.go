package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingDir(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "does-not-exist"))

	v, ok, err := b.Get("fitfriend_attendance_log_v1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestSetCreatesDirAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	b := New(dir)

	require.NoError(t, b.Set("key_v1", []byte(`[{"id":"a"}]`)))

	data, err := os.ReadFile(filepath.Join(dir, "key_v1.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(data))

	got, ok, err := b.Get("key_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, data, got)
}

func TestSetOverwritesWithoutLeavingTempFiles(t *testing.T) {
	dir := t.TempDir()
	b := New(dir)

	require.NoError(t, b.Set("k", []byte("first")))
	require.NoError(t, b.Set("k", []byte("second")))

	got, _, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "k.json", files[0].Name())
}

func TestRemove(t *testing.T) {
	b := New(t.TempDir())

	require.NoError(t, b.Set("k", []byte("v")))
	require.NoError(t, b.Remove("k"))

	_, ok, err := b.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveMissingKey(t *testing.T) {
	assert.NoError(t, New(t.TempDir()).Remove("k"))
}

func TestInvalidKey(t *testing.T) {
	b := New(t.TempDir())

	err := b.Set("../escape", []byte("v"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage key")

	_, _, err = b.Get("a/b")
	assert.Error(t, err)
}
