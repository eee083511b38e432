package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/deppfellow/go-customers/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerService_WithoutLicenseKey(t *testing.T) {
	service := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, service.GetApplication())
	assert.NotPanics(t, service.Shutdown)
}

func TestNilLoggerService(t *testing.T) {
	var service *LoggerService

	assert.Nil(t, service.GetApplication())
}

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger := newLogger(cfg, nil, &buf)

	logger.Info().Msg("dropped")
	logger.Warn().Int("id", 7).Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "customers", entry["service"])
	assert.Equal(t, "production", entry["environment"])
	assert.EqualValues(t, 7, entry["id"])
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	logger := WithTraceContext(newLogger(cfg, nil, &buf), nil)
	logger.Info().Msg("no trace")

	assert.NotContains(t, buf.String(), "trace.id")
}

// disabledApp returns a New Relic application that never connects.
func disabledApp(t *testing.T) *newrelic.Application {
	t.Helper()

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("customers-test"),
		newrelic.ConfigLicense(strings.Repeat("0", 40)),
		newrelic.ConfigAppLogForwardingEnabled(true),
		newrelic.ConfigEnabled(false),
	)
	require.NoError(t, err)

	return app
}

func TestForwardingWriter(t *testing.T) {
	var buf bytes.Buffer
	service := &LoggerService{nrApp: disabledApp(t)}

	t.Run("wraps the writer when forwarding is enabled", func(t *testing.T) {
		cfg := config.DefaultObservabilityConfig()
		cfg.NewRelic.AppLogForwardingEnabled = true

		assert.IsType(t, zerologWriter.ZerologWriter{}, forwardingWriter(cfg, service, &buf))
	})

	t.Run("keeps the writer when forwarding is disabled", func(t *testing.T) {
		cfg := config.DefaultObservabilityConfig()
		cfg.NewRelic.AppLogForwardingEnabled = false

		assert.Same(t, &buf, forwardingWriter(cfg, service, &buf))
	})

	t.Run("keeps the writer without New Relic", func(t *testing.T) {
		cfg := config.DefaultObservabilityConfig()
		cfg.NewRelic.AppLogForwardingEnabled = true

		assert.Same(t, &buf, forwardingWriter(cfg, nil, &buf))
	})
}
