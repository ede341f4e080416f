package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.BodyLimitMB)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "./data", cfg.Storage.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 0.2, cfg.Compare.PrefilterThreshold)
	assert.Equal(t, 0.3, cfg.Compare.MatchThreshold)
	assert.Equal(t, 50, cfg.Compare.MaxCandidates)
	assert.Equal(t, 10, cfg.Compare.PreviewRows)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("COMPARE_MATCH_THRESHOLD", "0.45")
	t.Setenv("COMPARE_MAX_CANDIDATES", "10")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, 0.45, cfg.Compare.MatchThreshold)
	assert.Equal(t, 10, cfg.Compare.MaxCandidates)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nDATABASE_DRIVER=sqlite\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("DATABASE_DRIVER")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}
