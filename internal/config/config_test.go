package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	env := map[string]string{
		"BIZTIME_PRIMARY.ENV":                 "local",
		"BIZTIME_SERVER.PORT":                 "3000",
		"BIZTIME_SERVER.READ_TIMEOUT":         "30",
		"BIZTIME_SERVER.WRITE_TIMEOUT":        "30",
		"BIZTIME_SERVER.IDLE_TIMEOUT":         "60",
		"BIZTIME_SERVER.CORS_ALLOWED_ORIGINS": "http://localhost:3000",
		"BIZTIME_DATABASE.HOST":               "localhost",
		"BIZTIME_DATABASE.PORT":               "5432",
		"BIZTIME_DATABASE.USER":               "postgres",
		"BIZTIME_DATABASE.PASSWORD":           "secret",
		"BIZTIME_DATABASE.NAME":               "biztime",
		"BIZTIME_DATABASE.SSL_MODE":           "disable",
		"BIZTIME_DATABASE.MAX_OPEN_CONNS":     "10",
		"BIZTIME_DATABASE.MAX_IDLE_CONNS":     "2",
		"BIZTIME_DATABASE.CONN_MAX_LIFETIME":  "300",
		"BIZTIME_DATABASE.CONN_MAX_IDLE_TIME": "60",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, CodeModeSlug, cfg.Company.CodeMode)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "biztime", cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfigSuppliedCodeMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BIZTIME_COMPANY.CODE_MODE", "supplied")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, CodeModeSupplied, cfg.Company.CodeMode)
}

func TestLoadConfigRejectsUnknownCodeMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BIZTIME_COMPANY.CODE_MODE", "random")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRequiresDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BIZTIME_DATABASE.HOST", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.HealthChecks.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.True(t, cfg.IsProduction())

	cfg.Environment = "local"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
