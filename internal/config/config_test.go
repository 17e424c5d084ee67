package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/maintenance")

	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Database.Migrate)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, time.Minute, cfg.Cache.CalendarTTL)
	assert.Equal(t, 20, cfg.Pagination.PageSize)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/maintenance")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_CALENDAR_TTL", "30s")
	t.Setenv("SERVER_ADDR", ":9000")

	cfg, err := Load([]string{"--addr", ":9090", "--migrate=false"})

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.False(t, cfg.Database.Migrate)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Cache.CalendarTTL)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  dsn: postgres://db/maintenance
pagination:
  page_size: 50
log:
  format: console
`), 0o600))

	cfg, err := Load([]string{"--config", path})

	require.NoError(t, err)
	assert.Equal(t, "postgres://db/maintenance", cfg.Database.DSN)
	assert.Equal(t, 50, cfg.Pagination.PageSize)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing dsn", env: map[string]string{"DATABASE_DSN": ""}},
		{name: "page size too large", env: map[string]string{"DATABASE_DSN": "postgres://x", "PAGINATION_PAGE_SIZE": "500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(nil)

			assert.Error(t, err)
		})
	}
}
