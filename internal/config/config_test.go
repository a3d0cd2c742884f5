package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CRAM_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	t.Setenv("CRAM_DB", "")
	t.Setenv("CRAM_EXPORT_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "outputs", cfg.Export.Dir)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.NotEmpty(t, cfg.Storage.DBPath)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
db_path = "/tmp/plans.db"

[export]
dir = "/tmp/exports"
format = "markdown"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CRAM_CONFIG", path)
	t.Setenv("CRAM_DB", "")
	t.Setenv("CRAM_EXPORT_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plans.db", cfg.Storage.DBPath)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	assert.Equal(t, "markdown", cfg.Export.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\ndb_path = \"/tmp/file.db\"\n"), 0o644))
	t.Setenv("CRAM_CONFIG", path)
	t.Setenv("CRAM_DB", "/tmp/env.db")
	t.Setenv("CRAM_EXPORT_DIR", "/tmp/env-exports")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DBPath)
	assert.Equal(t, "/tmp/env-exports", cfg.Export.Dir)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml = = ="), 0o644))
	t.Setenv("CRAM_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}
