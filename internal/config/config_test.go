package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingOptionalFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	assert.Error(t, err)
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: sqlite\n  path: sims.db\neditor:\n  width: 400\n"), 0o644))

	c, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, c.Store.Backend)
	assert.Equal(t, "sims.db", c.Store.StorePath())
	assert.Equal(t, "default", c.Store.Name)
	assert.Equal(t, 400, c.Editor.Width)
	assert.Equal(t, 60, c.Editor.TPS)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [unterminated"), 0o644))
	_, err := Load(path, true)
	assert.Error(t, err)
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(DefaultConfig(), map[string]string{
		"editor.width":    "-5",
		"editor.tps":      "abc",
		"editor.scale":    "4",
		"log.development": "true",
		"store.backend":   "SQLite",
		"unknown":         "x",
	})
	assert.Equal(t, 320, c.Editor.Width)
	assert.Equal(t, 60, c.Editor.TPS)
	assert.Equal(t, 4, c.Editor.Scale)
	assert.True(t, c.Log.Development)
	assert.Equal(t, BackendSQLite, c.Store.Backend)
}

func TestParseOverrides(t *testing.T) {
	got := ParseOverrides([]string{"a=1", "broken", " b = two=2 "})
	assert.Equal(t, map[string]string{"a": "1", "b": "two=2"}, got)
}

func TestStorePathDefaults(t *testing.T) {
	assert.Equal(t, "blockca.json", StoreConfig{Backend: BackendFile}.StorePath())
	assert.Equal(t, "blockca.db", StoreConfig{Backend: BackendSQLite}.StorePath())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	c := DefaultConfig()
	c.Store.Backend = "s3"
	assert.Error(t, c.Validate())
}

func TestResolveFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  path: from-file.json\nlog:\n  level: warn\n"), 0o644))

	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"--config", path,
		"--set", "store.path=from-set.json",
		"--set", "editor.tps=30",
		"--store", "from-flag.json",
	}))

	c, err := f.Resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", c.Store.Path)
	assert.Equal(t, 30, c.Editor.TPS)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestResolveVerboseAndMissingDefaultConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-v", "--backend", "sqlite"}))

	c, err := f.Resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, BackendSQLite, c.Store.Backend)
}
