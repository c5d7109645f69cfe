package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDB, EnvHorizonWeeks, EnvLogUseCases, EnvColor} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8, cfg.HorizonWeeks)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoad_DefaultDBPathUnderHome(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".synercore", "synercore.db"), cfg.DBPath)
	assert.Equal(t, 8, cfg.HorizonWeeks)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDB, "/tmp/forecast.db")
	t.Setenv(EnvHorizonWeeks, "12")
	t.Setenv(EnvLogUseCases, "true")
	t.Setenv(EnvColor, "NEVER")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/forecast.db", cfg.DBPath)
	assert.Equal(t, 12, cfg.HorizonWeeks)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDB, "/tmp/forecast.db")
	t.Setenv(EnvHorizonWeeks, "60")
	t.Setenv(EnvColor, "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.HorizonWeeks)
	assert.Equal(t, ColorAuto, cfg.Color)

	t.Setenv(EnvHorizonWeeks, "abc")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.HorizonWeeks)
}

func TestLoad_EnvFileFillsUnsetKeys(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "SYNERCORE_DB=/data/synercore.db\nSYNERCORE_HORIZON_WEEKS=4\nSYNERCORE_COLOR=always\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(EnvHorizonWeeks, "10")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/synercore.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.HorizonWeeks, "process environment wins over .env")
	assert.Equal(t, ColorAlways, cfg.Color)

	_, set := os.LookupEnv(EnvColor)
	assert.False(t, set, ".env values must not leak into the environment")
}

func TestLoad_MissingEnvFileSkipped(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDB, "/tmp/x.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
}

func TestUseColor(t *testing.T) {
	assert.True(t, Config{Color: ColorAlways}.UseColor(0))
	assert.False(t, Config{Color: ColorNever}.UseColor(0))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, Config{Color: ColorAuto}.UseColor(f.Fd()), "regular files are not terminals")
}
