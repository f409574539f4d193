package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "CIPHERLAB_ALLOWED_ORIGINS", "CIPHERLAB_RATE_LIMIT",
		"CIPHERLAB_LOG_LEVEL", "CIPHERLAB_LOG_FORMAT", "GIN_MODE",
	} {
		// Setenv restores the old value on cleanup; godotenv skips keys that are set at all
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, []string{DefaultOrigin}, cfg.AllowOrigins)
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadYAMLAndEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
allowOrigins:
  - https://lab.example
rateLimit: 30
logLevel: debug
`), 0o600))

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://lab.example"}, cfg.AllowOrigins)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv("PORT", "7000")
	t.Setenv("CIPHERLAB_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	cfg, err = Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowOrigins)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CIPHERLAB_RATE_LIMIT=5\nCIPHERLAB_LOG_FORMAT=json\n"), 0o600))

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "nope.yaml"), "")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rateLimit: [1, 2"), 0o600))
	_, err = Load(bad, "")
	assert.Error(t, err)

	t.Setenv("CIPHERLAB_RATE_LIMIT", "lots")
	_, err = Load("", "")
	assert.ErrorContains(t, err, "CIPHERLAB_RATE_LIMIT")
}

func TestLogger(t *testing.T) {
	log, err := Config{LogLevel: "warn", LogFormat: "json"}.Logger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	_, err = Config{LogLevel: "loud", LogFormat: "text"}.Logger()
	assert.Error(t, err)

	_, err = Config{LogLevel: "info", LogFormat: "xml"}.Logger()
	assert.Error(t, err)
}
