package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, defaultSSTBaseURL, cfg.SSTBaseURL)
	assert.Equal(t, 10*time.Second, cfg.SSTTimeout)
	assert.True(t, cfg.SSTLiveEnabled)
	assert.Equal(t, time.Hour, cfg.SSTCacheTTL)
	assert.Equal(t, 512, cfg.SSTCacheSize)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SST_BASE_URL", "https://erddap.example.com/griddap/SST.json")
	t.Setenv("SST_TIMEOUT", "5s")
	t.Setenv("SST_LIVE_ENABLED", "false")
	t.Setenv("SST_CACHE_TTL", "15m")
	t.Setenv("SST_CACHE_SIZE", "64")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://erddap.example.com/griddap/SST.json", cfg.SSTBaseURL)
	assert.Equal(t, 5*time.Second, cfg.SSTTimeout)
	assert.False(t, cfg.SSTLiveEnabled)
	assert.Equal(t, 15*time.Minute, cfg.SSTCacheTTL)
	assert.Equal(t, 64, cfg.SSTCacheSize)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "SHUTDOWN_TIMEOUT", value: "soon"},
		{key: "SHUTDOWN_TIMEOUT", value: "-5s"},
		{key: "SST_TIMEOUT", value: "fast"},
		{key: "SST_CACHE_TTL", value: "0s"},
		{key: "SST_CACHE_SIZE", value: "many"},
		{key: "SST_CACHE_SIZE", value: "0"},
		{key: "SST_CACHE_SIZE", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key, "error should name the offending variable")
		})
	}
}

func TestLoad_LiveEnabledOnlyAcceptsTrue(t *testing.T) {
	// Anything other than the literal string "true" disables the live source.
	t.Setenv("SST_LIVE_ENABLED", "yes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.SSTLiveEnabled)
}
