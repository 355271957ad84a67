package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChakkritGit/calflow/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calflow.db")
	st, err := store.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestGetMissingKey(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	value, found, err := st.Get(context.Background(), store.KeyProfile)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestSetGetRoundTrip(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.KeyProfile, []byte(`{"name":"Alex"}`)))
	value, found, err := st.Get(ctx, store.KeyProfile)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"name":"Alex"}`, string(value))
}

func TestSetOverwrites(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.KeyDailyLogs, []byte(`{"a":1}`)))
	require.NoError(t, st.Set(ctx, store.KeyDailyLogs, []byte(`{"b":2}`)))

	value, found, err := st.Get(ctx, store.KeyDailyLogs)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"b":2}`, string(value))
}

func TestKeysAreIndependent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.KeyProfile, []byte(`1`)))
	_, found, err := st.Get(ctx, store.KeyDailyLogs)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "calflow.db")
	ctx := context.Background()

	st, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, store.KeyProfile, []byte(`42`)))
	require.NoError(t, st.Close())

	st, err = store.OpenSQLite(path)
	require.NoError(t, err)
	defer st.Close()
	value, found, err := st.Get(ctx, store.KeyProfile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte(`42`), value)
}
