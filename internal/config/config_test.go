package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "DB_DSN", "DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_NAME", "MAX_UPLOAD_MB", "DB_LOGS", "APP_ENV", "METRICS_PATH", "ORIGIN")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "http://localhost:4200", cfg.Origin)
	assert.Equal(t, 25, cfg.MaxUploadMB)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
	assert.Equal(t, "root:@tcp(localhost:3306)/medi?charset=utf8mb4&parseTime=True&loc=Local", cfg.Database.DSN)
	assert.False(t, cfg.EnableDBLogs)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigDSN(t *testing.T) {
	t.Setenv("DB_DSN", "user:pw@tcp(db:3306)/records")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(db:3306)/records", cfg.Database.DSN)
}

func TestLoadConfigInvalidUploadLimit(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "MAX_UPLOAD_MB")

	t.Setenv("MAX_UPLOAD_MB", "0")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "must be positive")
}

func TestLoadConfigProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MAX_UPLOAD_MB", "10")
	t.Setenv("DB_LOGS", "true")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.EnableDBLogs)
	assert.Equal(t, 10, cfg.MaxUploadMB)
}

func TestLoadConfigOrigin(t *testing.T) {
	for _, origin := range []string{"*", "https://records.example.org", "http://localhost:4200"} {
		t.Setenv("ORIGIN", origin)
		cfg, err := LoadConfig()
		require.NoError(t, err, origin)
		assert.Equal(t, origin, cfg.Origin)
	}

	for _, origin := range []string{"records.example.org", "localhost:4200", "", "ftp://files"} {
		t.Setenv("ORIGIN", origin)
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid ORIGIN", origin)
	}
}
