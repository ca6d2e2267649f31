package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_QUERY_TIMEOUT", "")
	t.Setenv("LOGLEVEL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DbPort)
	assert.Equal(t, int32(10), cfg.DbMaxConns)
	assert.Equal(t, 5*time.Second, cfg.DbQueryTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_QUERY_TIMEOUT", "250ms")
	t.Setenv("LOGLEVEL", "DEBUG")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(4), cfg.DbMaxConns)
	assert.Equal(t, 250*time.Millisecond, cfg.DbQueryTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadConfig_BadValues(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "zero")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_QUERY_TIMEOUT", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := &Config{DbHost: "localhost", DbUser: "nc", DbName: "nc_news", DbQueryTimeout: time.Second}
	warnings, err := c.Validate()
	require.NoError(t, err)
	assert.Contains(t, warnings, "DB_PASSWORD is empty")

	_, err = (&Config{}).Validate()
	assert.Error(t, err)
}

func TestGetDSNSafe_MasksPassword(t *testing.T) {
	c := &Config{DbUser: "nc", DbPass: "hunter2", DbHost: "db", DbPort: "5432", DbName: "nc_news", DbSSLMode: "disable"}

	assert.Equal(t, "postgres://nc:hunter2@db:5432/nc_news?sslmode=disable", c.GetDSN())
	assert.NotContains(t, c.GetDSNSafe(), "hunter2")
}
