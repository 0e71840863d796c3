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
	for _, key := range []string{"PORT", "APP_URL", "HR_EMAIL", "CATALOG_CACHE_TTL", "AUTH_REQUIRED", "HR_TIMEZONE", "DEFAULT_LANG"} {
		t.Setenv(key, "")
	}

	cfg, envLoaded, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, envLoaded)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.AppURL)
	assert.Equal(t, "hr@lokinstallaties.nl", cfg.HREmail)
	assert.Equal(t, time.Hour, cfg.CatalogCacheTTL)
	assert.False(t, cfg.AuthRequired)
	assert.Equal(t, "nl", cfg.DefaultLang)
	assert.Equal(t, "Europe/Amsterdam", cfg.HRTimezone.String())
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"PORT", "APP_URL", "AUTH_REQUIRED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9000\nAPP_URL=https://groei.example.nl/\nAUTH_REQUIRED=true\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("APP_URL")
		os.Unsetenv("AUTH_REQUIRED")
	})

	cfg, envLoaded, err := Load(path)
	require.NoError(t, err)

	assert.True(t, envLoaded)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://groei.example.nl", cfg.AppURL)
	assert.True(t, cfg.AuthRequired)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "cache ttl", key: "CATALOG_CACHE_TTL", val: "soon"},
		{name: "auth flag", key: "AUTH_REQUIRED", val: "maybe"},
		{name: "timezone", key: "HR_TIMEZONE", val: "Mars/Olympus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, _, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
