package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "accountd.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ACCOUNTD_ADDRESS", ":9090")
	t.Setenv("ACCOUNTD_SESSION_TTL", "2h")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ACCOUNTD_ADDRESS", ":9090")

	cfg, err := Load([]string{"-a", ":7070", "-t", "30m"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Address)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("ACCOUNTD_SESSION_TTL", "soon")

	_, err := Load(nil)
	assert.Error(t, err)
}
