package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "OSIDOU_API_URL", "DB_DRIVER", "REDIS_HOST"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Chat.PollInterval)
	assert.Equal(t, "osidou_session", cfg.Session.CookieName)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	yaml := `
server:
  port: 9090
  env: production
upstream:
  base_url: http://api.internal:8000
  timeout: 3s
database:
  driver: mysql
  host: db
  port: 3306
  user: web
  dbname: osidou
chat:
  poll_interval: 0s
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	for _, k := range []string{"APP_ENV", "PORT", "DB_DRIVER", "DB_HOST", "DB_USER", "DB_NAME"} {
		t.Setenv(k, "")
	}
	t.Setenv("OSIDOU_API_URL", "https://api.osidou.example/")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REDIS_HOST", "cache")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://api.osidou.example", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Chat.PollInterval, "non-positive interval falls back")
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, "web:secret@tcp(db:3306)/osidou?charset=utf8mb4&parseTime=True&loc=Local", cfg.Database.GetDSN())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetDSN_SQLite(t *testing.T) {
	d := DatabaseConfig{Driver: "sqlite", Path: "web.db"}
	assert.Equal(t, "web.db", d.GetDSN())
}
