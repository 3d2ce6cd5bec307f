package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"TOKEN_URL", "CATALOG_URL", "PORT", "HTTP_TIMEOUT", "RESULT_COUNT", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenURL, cfg.TokenURL)
	assert.Equal(t, DefaultCatalogURL, cfg.CatalogURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3, cfg.ResultCount)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TOKEN_URL", "http://localhost:8081/v1/tokens")
	t.Setenv("CATALOG_URL", "http://localhost:8081/v1/coffee_shops")
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("RESULT_COUNT", "5")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081/v1/tokens", cfg.TokenURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5, cfg.ResultCount)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"bad url":      {"CATALOG_URL", "not a url"},
		"bad port":     {"PORT", "eighty"},
		"zero count":   {"RESULT_COUNT", "0"},
		"bad level":    {"LOG_LEVEL", "chatty"},
		"zero timeout": {"HTTP_TIMEOUT", "0s"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Setenv("TOKEN_SIGNING_KEY", "0123456789abcdef0123")
	t.Setenv("CATALOG_PORT", "7000")
	t.Setenv("TOKEN_TTL", "15m")

	cfg, err := LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "data/catalog.db", cfg.DBPath)
}

func TestLoadCatalogRequiresSigningKey(t *testing.T) {
	t.Setenv("TOKEN_SIGNING_KEY", "short")

	_, err := LoadCatalog()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("COFFEE_TEST_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("COFFEE_TEST_KEY") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv", Get("COFFEE_TEST_KEY", "fallback"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
	assert.Equal(t, "fallback", Get("COFFEE_TEST_MISSING", "fallback"))
}
