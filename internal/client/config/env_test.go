package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverlaysSetVariables(t *testing.T) {
	t.Setenv("GOPHAUTH_LOG_LEVEL", "debug")
	t.Setenv("GOPHAUTH_WEB_READ_HEADER_TIMEOUT", "2s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.WebReadHeaderTimeout)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
}

func TestParseEnv_InvalidDurationPanics(t *testing.T) {
	t.Setenv("GOPHAUTH_WEB_READ_HEADER_TIMEOUT", "later")

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}
