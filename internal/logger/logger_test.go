package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/wheelspec/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, ls.GetApplication())
	ls.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLoggerTagsServiceAndLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger := newLogger(&buf, cfg)

	logger.Info().Msg("dropped")
	logger.Warn().Str("form_number", "WHEEL-2025-001").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "production", entry["environment"])
	assert.Equal(t, "WHEEL-2025-001", entry["form_number"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("unknown"))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelWarn, GetPgxTraceLogLevel(zerolog.WarnLevel))
	assert.Equal(t, tracelog.LogLevelNone, GetPgxTraceLogLevel(zerolog.Disabled))
}

func TestWithTraceContextWithoutTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	l := WithTraceContext(base, nil)
	l.Info().Msg("x")
	assert.NotContains(t, buf.String(), "trace.id")
}
