package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserConfigWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 38471, cfg.App.Port)
	assert.Equal(t, dir, cfg.App.DataDir)

	// Second call keeps the existing file.
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 9000\n"), 0o644))
	_, err = EnsureUserConfig(dir)
	require.NoError(t, err)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.App.Port)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("sessions:\n  max: 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Sessions.Max)
	assert.Equal(t, 1800, cfg.Sessions.TTLSeconds)
	assert.Equal(t, "127.0.0.1", cfg.App.Host)
}

func TestNormalizeAndValidate(t *testing.T) {
	_, vr := NormalizeAndValidate(Default())
	assert.True(t, vr.OK())
	assert.Empty(t, vr.Warnings)

	cfg := Default()
	cfg.App.Port = 0
	cfg.Sessions.Max = -1
	cfg.RateLimit.Burst = 0
	_, vr = NormalizeAndValidate(cfg)
	assert.False(t, vr.OK())
	assert.Len(t, vr.Errors, 3)

	cfg = Default()
	cfg.App.Host = " 0.0.0.0 "
	cfg.Sessions.TTLSeconds = 0
	out, vr := NormalizeAndValidate(cfg)
	assert.True(t, vr.OK())
	assert.Equal(t, "0.0.0.0", out.App.Host)
	assert.Len(t, vr.Warnings, 2)
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	cfg.App.Port = 70000

	err := SaveAtomic(path, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.port")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, SaveAtomic(path, Default()))

	cfg := Default()
	cfg.App.Port = 40000
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40000, got.App.Port)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, 38471, bak.App.Port)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("JOBBOARD_PORT", "41000")
	t.Setenv("JOBBOARD_HOST", "localhost")
	t.Setenv("JOBBOARD_CATALOG", "/tmp/jobs.yml")
	t.Setenv("JOBBOARD_SESSION_TTL_SECONDS", "nope")

	cfg := Default()
	ApplyEnv(&cfg)
	assert.Equal(t, 41000, cfg.App.Port)
	assert.Equal(t, "localhost", cfg.App.Host)
	assert.Equal(t, "/tmp/jobs.yml", cfg.Catalog.Path)
	assert.Equal(t, 1800, cfg.Sessions.TTLSeconds)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	const key = "JOBBOARD_DOTENV_TEST"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o644))
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	// Variables already set win over the file.
	t.Setenv(key, "from-env")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv(key))
}
