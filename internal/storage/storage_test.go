package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStoreContract(t *testing.T, store Store) {
	t.Helper()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set("invoices", `[{"id":"i1"}]`))
	value, err := store.Get("invoices")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"i1"}]`, value)

	// Set replaces.
	require.NoError(t, store.Set("invoices", `[]`))
	value, err = store.Get("invoices")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	require.NoError(t, store.Delete("invoices"))
	_, err = store.Get("invoices")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete("invoices"))
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studiobooks.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	runStoreContract(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studiobooks.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("branding-settings", `{"businessName":"Lumen Studio"}`))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get("branding-settings")
	require.NoError(t, err)
	assert.Equal(t, `{"businessName":"Lumen Studio"}`, value)
}
