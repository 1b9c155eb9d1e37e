package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRemove(t *testing.T) {
	b := New()

	_, ok, err := b.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set("k", []byte(`[]`)))
	v, ok, err := b.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, b.Remove("k"))
	_, ok, err = b.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveMissingKey(t *testing.T) {
	assert.NoError(t, New().Remove("nope"))
}

func TestValuesAreCopied(t *testing.T) {
	b := New()
	in := []byte("abc")
	require.NoError(t, b.Set("k", in))
	in[0] = 'x'

	v, _, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(v))

	v[1] = 'y'
	again, _, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
