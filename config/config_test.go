package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, ":8080", cfg.Web.Listen)
	assert.Equal(t, "development", cfg.Logger.Mode)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogd.yml")
	body := `
database:
  type: sqlite
  dsn: /tmp/catalog.db
web:
  listen: ":9090"
logger:
  mode: production
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "/tmp/catalog.db", cfg.Database.DSN)
	assert.Equal(t, ":9090", cfg.Web.Listen)
	assert.Equal(t, "production", cfg.Logger.Mode)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultAppConfig.System.Workdir, cfg.System.Workdir)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CATALOGD_DB_TYPE", "sqlite")
	t.Setenv("CATALOGD_DB_DSN", ":memory:")
	t.Setenv("CATALOGD_DB_MAX_CONN", "5")
	t.Setenv("CATALOGD_LOGGER_FILE_ENABLE", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Database.MaxConn)
	assert.True(t, cfg.Logger.FileEnable)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogd.yml")
	require.NoError(t, os.WriteFile(path, []byte("database: ["), 0o600))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
