package journal

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAssignsSequence(t *testing.T) {
	store := openTestStore(t)

	seq, err := store.Append("asset:a", "Rename", json.RawMessage(`{"newname":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)

	seq, err = store.Append("asset:a", "Rename", json.RawMessage(`{"newname":"y"}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)
}

func TestReplayOrder(t *testing.T) {
	store := openTestStore(t)

	names := []string{"Rename", "Relocate", "Rename"}
	for _, name := range names {
		_, err := store.Append("asset:a", name, json.RawMessage(`{}`))
		require.NoError(t, err)
	}

	var got []string
	err := store.Replay("asset:a", func(rec Record) error {
		got = append(got, rec.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, names, got)
}

func TestReplayMissingStream(t *testing.T) {
	store := openTestStore(t)

	called := false
	err := store.Replay("asset:missing", func(Record) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestStreamsAreIsolated(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Append("asset:a", "Rename", json.RawMessage(`{}`))
	require.NoError(t, err)
	_, err = store.Append("location:b", "Rename", json.RawMessage(`{}`))
	require.NoError(t, err)

	size, err := store.Size("asset:a")
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	streams, err := store.Streams()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"asset:a", "location:b"}, streams)
}

func TestJournalSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.Append("asset:a", "Rename", json.RawMessage(`{"newname":"x"}`))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	var payloads []string
	err = store.Replay("asset:a", func(rec Record) error {
		payloads = append(payloads, string(rec.Payload))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{`{"newname":"x"}`}, payloads)
}
