package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "PORT", "APP_ENV", "SESSION_SECRET", "SESSION_TTL", "LOG_FORMAT", "METRICS_ENABLED", "METRICS_PATH"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Len(t, cfg.Session.Secret, 64)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "rd_session", cfg.Session.CookieName)
	assert.False(t, cfg.Session.SecureCookie)
	assert.True(t, cfg.Metrics.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PortAndOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("HTMX_URL", "")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "", cfg.HTMXURL)
}

func TestValidate_ProdNeedsSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("METRICS_PATH", "")

	cfg := Load()
	assert.True(t, cfg.IsProd())
	assert.True(t, cfg.Session.SecureCookie)
	assert.Error(t, cfg.Validate())

	cfg.Session.Secret = "s3cret"
	assert.NoError(t, cfg.Validate())

	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())
}
