package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRemove(store *attendance.Store, id string, confirm ConfirmFunc) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := removeCmd
	cmd.SetOut(stdout)

	err := runRemove(cmd, store, id, confirm)
	return stdout.String(), err
}

func TestRemoveEntry(t *testing.T) {
	store := newTestStore(t)
	e := seed(t, store, "Alex P.", "2024-05-01")
	seed(t, store, "Jamie L.", "2024-05-01")

	stdout, err := execRemove(store, e.ID, AlwaysYes())
	require.NoError(t, err)
	assert.Contains(t, stdout, "Alex P.")
	assert.Contains(t, stdout, "2024-05-01")
	assert.Contains(t, stdout, "removed entry")

	_, found := store.FindAttendance(e.ID)
	assert.False(t, found)
	assert.Len(t, store.ListAttendance(), 1)
}

func TestRemoveUnknownID(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "Alex P.", "2024-05-01")

	stdout, err := execRemove(store, "missing", AlwaysYes())
	require.NoError(t, err)
	assert.Contains(t, stdout, "not found")
	assert.Len(t, store.ListAttendance(), 1)
}

func TestRemoveCancelled(t *testing.T) {
	store := newTestStore(t)
	e := seed(t, store, "Alex P.", "2024-05-01")

	stdout, err := execRemove(store, e.ID, func(string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Contains(t, stdout, "cancelled")
	assert.Len(t, store.ListAttendance(), 1)
}

func TestRemoveConfirmError(t *testing.T) {
	store := newTestStore(t)
	e := seed(t, store, "Alex P.", "2024-05-01")

	_, err := execRemove(store, e.ID, func(string) (bool, error) { return false, errors.New("aborted") })
	assert.EqualError(t, err, "aborted")
	assert.Len(t, store.ListAttendance(), 1)
}

func TestRemoveWithoutConfirmation(t *testing.T) {
	store := newTestStore(t)
	e := seed(t, store, "Alex P.", "2024-05-01")

	_, err := execRemove(store, e.ID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Len(t, store.ListAttendance(), 1)
}
