package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"WHEELSPEC_PRIMARY__ENV":                          "local",
		"WHEELSPEC_SERVER__PORT":                          "8080",
		"WHEELSPEC_SERVER__READ_TIMEOUT":                  "30",
		"WHEELSPEC_SERVER__WRITE_TIMEOUT":                 "30",
		"WHEELSPEC_SERVER__IDLE_TIMEOUT":                  "60",
		"WHEELSPEC_SERVER__CORS_ALLOWED_ORIGINS":          "http://localhost:3000,http://localhost:5173",
		"WHEELSPEC_DATABASE__HOST":                        "localhost",
		"WHEELSPEC_DATABASE__PORT":                        "5432",
		"WHEELSPEC_DATABASE__USER":                        "postgres",
		"WHEELSPEC_DATABASE__PASSWORD":                    "postgres",
		"WHEELSPEC_DATABASE__NAME":                        "wheelspec",
		"WHEELSPEC_DATABASE__SSL_MODE":                    "disable",
		"WHEELSPEC_DATABASE__MAX_OPEN_CONNS":              "25",
		"WHEELSPEC_DATABASE__MAX_IDLE_CONNS":              "25",
		"WHEELSPEC_DATABASE__CONN_MAX_LIFETIME":           "300",
		"WHEELSPEC_DATABASE__CONN_MAX_IDLE_TIME":          "300",
		"WHEELSPEC_REDIS__ADDRESS":                        "localhost:6379",
		"WHEELSPEC_OBSERVABILITY__LOGGING__LEVEL":         "debug",
		"WHEELSPEC_OBSERVABILITY__HEALTH_CHECKS__TIMEOUT": "2s",
	} {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.False(t, cfg.Notification.Enabled)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	// untouched defaults survive a partial override
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, 2*time.Second, cfg.Observability.HealthChecks.Timeout)
	assert.Equal(t, []string{"database", "redis"}, cfg.Observability.HealthChecks.Checks)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHEELSPEC_DATABASE__HOST", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "config validation failed")
}

func TestLoadConfigNotificationsNeedRecipients(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHEELSPEC_NOTIFICATION__ENABLED", "true")
	t.Setenv("WHEELSPEC_INTEGRATION__RESEND_API_KEY", "re_test")
	t.Setenv("WHEELSPEC_NOTIFICATION__FROM", "Wheel Specs <forms@example.com>")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("WHEELSPEC_NOTIFICATION__RECIPIENTS", "qa@example.com,shop@example.com")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"qa@example.com", "shop@example.com"}, cfg.Notification.Recipients)
}

func TestLoadConfigNotificationsNeedResendKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHEELSPEC_NOTIFICATION__ENABLED", "true")
	t.Setenv("WHEELSPEC_NOTIFICATION__FROM", "forms@example.com")
	t.Setenv("WHEELSPEC_NOTIFICATION__RECIPIENTS", "qa@example.com")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "resend_api_key")
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.HealthChecks.Checks = []string{"database", "kafka"}
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestHealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HealthCheckEnabled("database"))

	cfg.HealthChecks.Checks = []string{"database"}
	assert.False(t, cfg.HealthCheckEnabled("redis"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("database"))
}

func TestLoadConfigSplitsLists(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHEELSPEC_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("WHEELSPEC_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "database")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, []string{"database"}, cfg.Observability.HealthChecks.Checks)
	assert.False(t, cfg.Observability.HealthCheckEnabled("redis"))
}

func TestLoadConfigBlankListIsMissing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHEELSPEC_SERVER__CORS_ALLOWED_ORIGINS", " , ")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "CORSAllowedOrigins")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitList(" a , ,b "))
	assert.Nil(t, splitList(""))
}
