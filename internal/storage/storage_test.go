package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/teampulse/internal/storage"
)

// adapters under test, each constructed fresh per subtest.
func newAdapters(t *testing.T) map[string]storage.Adapter {
	t.Helper()

	file, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)

	sqlite, err := storage.NewSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := sqlite.Close(); err != nil {
			t.Errorf("closing sqlite adapter: %v", err)
		}
	})

	return map[string]storage.Adapter{
		"memory": storage.NewMemory(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestAdapterRoundTrip(t *testing.T) {
	for name, adapter := range newAdapters(t) {
		t.Run(name, func(t *testing.T) {
			doc := []byte(`[{"id":"t1","title":"Ship v1","isDeleted":false}]`)
			require.NoError(t, adapter.Save(storage.KeyTasks, doc))

			got, ok, err := adapter.Load(storage.KeyTasks)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, doc, got)
		})
	}
}

func TestAdapterLoadAbsentKey(t *testing.T) {
	for name, adapter := range newAdapters(t) {
		t.Run(name, func(t *testing.T) {
			got, ok, err := adapter.Load("never-written")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestAdapterSaveReplacesPriorValue(t *testing.T) {
	for name, adapter := range newAdapters(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, adapter.Save(storage.KeyUsers, []byte(`["old"]`)))
			require.NoError(t, adapter.Save(storage.KeyUsers, []byte(`["new"]`)))

			got, ok, err := adapter.Load(storage.KeyUsers)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`["new"]`), got)
		})
	}
}

func TestAdapterKeysAreIndependent(t *testing.T) {
	for name, adapter := range newAdapters(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, adapter.Save(storage.KeyTasks, []byte(`["tasks"]`)))
			require.NoError(t, adapter.Save(storage.KeyMessages, []byte(`["messages"]`)))

			got, ok, err := adapter.Load(storage.KeyTasks)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`["tasks"]`), got)
		})
	}
}

func TestFileAdapterSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := storage.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(storage.KeyAuth, []byte(`{"isAuthenticated":true}`)))

	second, err := storage.NewFile(dir)
	require.NoError(t, err)

	got, ok, err := second.Load(storage.KeyAuth)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"isAuthenticated":true}`), got)
}

func TestSQLiteAdapterSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	first, err := storage.NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(storage.KeyNotifications, []byte(`[]`)))
	require.NoError(t, first.Close())

	second, err := storage.NewSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	got, ok, err := second.Load(storage.KeyNotifications)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), got)
}
