package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ModeDevelopment, cfg.Server.Mode)
	assert.Equal(t, models.BrandDeepjyoti, cfg.Brand())
	assert.Equal(t, 3, cfg.Site.NavLimit)
	assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout())
	assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout())
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
  mode: production
  read_timeout: 3s
site:
  brand: anupama
  nav_limit: 5
logging:
  level: debug
  format: console
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, ModeProduction, cfg.Server.Mode)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout())
	assert.Equal(t, models.BrandAnupama, cfg.Brand())
	assert.Equal(t, 5, cfg.Site.NavLimit)
	assert.Equal(t, logger.Config{Level: logger.DebugLevel, Format: logger.FormatConsole}, cfg.LoggerConfig())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "site:\n  brand: anupama\n")

	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("SITE_BRAND", "chanakya")
	t.Setenv("SITE_NAV_LIMIT", "2")
	t.Setenv("SERVER_TRUSTED_PROXIES", "10.0.0.1, ,192.168.0.0/16")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, models.BrandChanakya, cfg.Brand())
	assert.Equal(t, 2, cfg.Site.NavLimit)
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.Server.TrustedProxies)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		body string
		msg  string
	}{
		{name: "unknown mode", env: map[string]string{"SERVER_MODE": "staging"}, msg: "unknown server mode"},
		{name: "bad duration", env: map[string]string{"SERVER_READ_TIMEOUT": "soon"}, msg: "read timeout"},
		{name: "unknown brand", env: map[string]string{"SITE_BRAND": "other"}, msg: "unknown site brand"},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}, msg: "unknown log level"},
		{name: "bad log format", env: map[string]string{"LOG_FORMAT": "xml"}, msg: "unknown log format"},
		{name: "non-numeric int env", env: map[string]string{"SITE_NAV_LIMIT": "three"}, msg: "SITE_NAV_LIMIT"},
		{name: "malformed yaml", body: "server: [", msg: "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUnknownBrandAllowedWithCatalogPath(t *testing.T) {
	t.Setenv("SITE_BRAND", "custom")
	t.Setenv("SITE_CATALOG_PATH", "/srv/catalog.yaml")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/catalog.yaml", cfg.Site.CatalogPath)
}
