package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCfg_Defaults(t *testing.T) {
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := LoadCfg()
	require.NoError(t, err)

	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "data", cfg.File.Dir)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
}

func TestLoadCfg_EnvFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CALCULATOR_STORE=postgres\nCALCULATOR_DB_PORT=6543\nCALCULATOR_STORE_TIMEOUT=500ms\n"), 0o644))
	t.Setenv(envFileVar, path)
	// окружение важнее .env
	t.Setenv("CALCULATOR_DB_PORT", "7777")
	t.Cleanup(func() {
		os.Unsetenv("CALCULATOR_STORE")
		os.Unsetenv("CALCULATOR_STORE_TIMEOUT")
	})

	cfg, err := LoadCfg()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, 500*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, "7777", cfg.DB.Port)
}

func TestLoadCfg_UnknownStore(t *testing.T) {
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CALCULATOR_STORE", "sqlite")

	_, err := LoadCfg()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestConfigValidate_Timeout(t *testing.T) {
	cfg := Config{Store: StoreMongo}
	assert.Error(t, cfg.Validate())
	cfg.StoreTimeout = time.Second
	assert.NoError(t, cfg.Validate())
}
