package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("UPSTREAM_API_URL", "http://portal.local:8080/")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("INFLIGHT_TTL_SECONDS", "45")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://portal.local:8080", cfg.UpstreamAPIURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 45*time.Second, cfg.InflightTTL)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("JOBPORTAL_TEST_KEY", "value")
	assert.Equal(t, "value", getEnv("JOBPORTAL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("JOBPORTAL_MISSING_KEY", "fallback"))
	assert.Equal(t, 7, getEnvInt("JOBPORTAL_MISSING_KEY", 7))
}
