package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestBoltStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	s.Set(KeyUser, record{Name: "Personal Trainer", Count: 3})

	var got record
	require.True(t, s.Get(KeyUser, &got))
	assert.Equal(t, record{Name: "Personal Trainer", Count: 3}, got)
}

func TestBoltStoreMissingKey(t *testing.T) {
	s := newTestStore(t)

	var got record
	assert.False(t, s.Get("personalfit_never_set", &got))
	assert.Equal(t, record{}, got)
}

func TestBoltStoreCorruptValueBehavesAsAbsent(t *testing.T) {
	s := newTestStore(t)

	// Plant invalid JSON directly, bypassing Set.
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(KeyStudents), []byte("{not json"))
	})
	require.NoError(t, err)

	var got []record
	assert.False(t, s.Get(KeyStudents, &got), "corrupt value must read as absent")

	// The slot is still writable afterwards.
	s.Set(KeyStudents, []record{{Name: "Maria"}})
	require.True(t, s.Get(KeyStudents, &got))
	assert.Equal(t, "Maria", got[0].Name)
}

func TestBoltStoreRemoveAndClear(t *testing.T) {
	s := newTestStore(t)

	s.Set(KeyUser, record{Name: "a"})
	s.Set(KeyMessages, record{Name: "b"})

	s.Remove(KeyUser)
	var got record
	assert.False(t, s.Get(KeyUser, &got))
	assert.True(t, s.Get(KeyMessages, &got))

	s.Clear()
	assert.False(t, s.Get(KeyMessages, &got))

	// Removing an unset key never raises.
	s.Remove("personalfit_ghost")
}
