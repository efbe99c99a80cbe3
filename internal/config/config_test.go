package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DataSourceFile, cfg.Data.Source)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, 10*time.Second, cfg.Data.RequestTimeout)
	assert.Zero(t, cfg.Data.ReloadInterval)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 15.0, cfg.Map.OutdoorZoom)
	assert.Equal(t, 14.0, cfg.Map.OutdoorMinZoom)
	assert.Equal(t, 20.0, cfg.Map.OutdoorMaxZoom)
	assert.Equal(t, 18.0, cfg.Map.OutdoorFocusZoom)
	assert.Equal(t, 0.0, cfg.Map.IndoorFocusZoom)
	assert.Equal(t, 0.25, cfg.Map.IndoorZoomSnap)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	path := writeEnvFile(t, `API_PORT=9090
DATA_SOURCE=HTTP
DATA_BASE_URL=http://cdn.example.com/data/
SESSION_STORE=memory
SESSION_TTL=60
DATA_RELOAD_INTERVAL=300
LOG_LEVEL=debug
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DataSourceHTTP, cfg.Data.Source)
	assert.Equal(t, "http://cdn.example.com/data", cfg.Data.BaseURL)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, time.Minute, cfg.Session.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Data.ReloadInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "API_PORT=9090\n")
	t.Setenv("API_PORT", "7070")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFrom_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{name: "unknown data source", env: "DATA_SOURCE=ftp\n"},
		{name: "http without base url", env: "DATA_SOURCE=http\n"},
		{name: "s3 without bucket", env: "DATA_SOURCE=s3\nS3_ENDPOINT=localhost:9000\n"},
		{name: "unknown session store", env: "SESSION_STORE=disk\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeEnvFile(t, tt.env))
			assert.Error(t, err)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "maps", SSLMode: "disable"},
		Redis:    RedisConfig{Host: "cache", Port: 6380},
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=maps sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
}
