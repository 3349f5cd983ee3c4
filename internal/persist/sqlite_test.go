package persist

import (
	"context"
	"path/filepath"
	"testing"

	"blockca/internal/config"
	"blockca/internal/core"

	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T, name string) *SQLiteStore {
	t.Helper()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "sims.db"), name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestSQLite(t, "")
	require.Equal(t, DefaultSimName, st.Name())

	_, err := st.ReadDocument(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	sim := sampleSim(t)
	require.NoError(t, Save(ctx, st, sim))
	got, _, err := Load(ctx, st)
	require.NoError(t, err)
	requireSameSim(t, sim, got)

	// upsert replaces the previous payload
	_, err = sim.SetRule(core.Block{0, 0, 0, 0}, core.Block{1, 1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, Save(ctx, st, sim))
	got, _, err = Load(ctx, st)
	require.NoError(t, err)
	require.Equal(t, 3, got.RuleCount())
}

func TestSQLiteNamedSims(t *testing.T) {
	ctx := context.Background()
	st := openTestSQLite(t, "sand")
	other := st.WithName("water")

	require.NoError(t, st.WriteDocument(ctx, []byte(`{"symmetry": {"horizontal": false}}`)))
	require.NoError(t, other.WriteDocument(ctx, []byte(`{}`)))

	names, err := st.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"sand", "water"}, names)

	sand, _, err := Load(ctx, st)
	require.NoError(t, err)
	require.False(t, sand.Symmetry().Horizontal)

	require.NoError(t, other.Delete(ctx))
	_, err = other.ReadDocument(ctx)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, other.Delete(ctx))
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	st, err := Open(config.StoreConfig{Backend: config.BackendFile, Path: filepath.Join(dir, "a.json")})
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, st)
	require.NoError(t, st.Close())

	st, err = Open(config.StoreConfig{Backend: config.BackendSQLite, Path: filepath.Join(dir, "a.db"), Name: "x"})
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, st)
	require.Equal(t, "x", st.(*SQLiteStore).Name())
	require.NoError(t, st.Close())

	_, err = Open(config.StoreConfig{Backend: "tape"})
	require.Error(t, err)
}
