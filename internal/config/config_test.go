package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "TAX_TABLES_PATH", "TAX_TABLES_URL", "TAX_TABLES_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, cfg.Tables.Timeout)
	assert.Empty(t, cfg.Tables.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("TAX_TABLES_TIMEOUT", "500ms")
	t.Setenv("TAX_TABLES_PATH", "/etc/payroll/tables.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Tables.Timeout)
	assert.Equal(t, "/etc/payroll/tables.yaml", cfg.Tables.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("SERVER_WRITE_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
}
