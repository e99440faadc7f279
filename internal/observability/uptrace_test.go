package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"

	"github.com/riskibarqy/hitting-tracker/internal/config"
	"github.com/riskibarqy/hitting-tracker/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "hitting-tracker-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	base := logging.NewNop()
	logger, shutdown, err := InitUptrace(cfg, base)
	require.NoError(t, err)
	assert.Same(t, base, logger)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSkipLogRecord(t *testing.T) {
	t.Parallel()

	assert.True(t, skipLogRecord("http_request", map[string]any{"http_path": "/healthz"}))
	assert.False(t, skipLogRecord("http_request", map[string]any{"http_path": "/v1/players"}))
	assert.False(t, skipLogRecord("stats computed", map[string]any{"http_path": "/healthz"}))
}

func TestLogAttributes_SortedAndTyped(t *testing.T) {
	t.Parallel()

	attrs := logAttributes(map[string]any{
		"player_id": "p1",
		"at_bats":   int64(7),
		"elapsed":   250 * time.Millisecond,
		"card":      map[string]any{"grade": "B+", "score": 88.5},
	})

	require.Len(t, attrs, 4)
	assert.Equal(t, "at_bats", attrs[0].Key)
	assert.Equal(t, int64(7), attrs[0].Value.AsInt64())
	assert.Equal(t, "card", attrs[1].Key)
	assert.Equal(t, otellog.KindMap, attrs[1].Value.Kind())
	assert.Equal(t, "250ms", attrs[2].Value.AsString())
	assert.Equal(t, "p1", attrs[3].Value.AsString())
}

func TestOTelLogCore_RespectsLevel(t *testing.T) {
	t.Parallel()

	core := newOTelLogCore("dev", zapcore.WarnLevel)
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))

	withFields := core.With([]zapcore.Field{{Key: "service", Type: zapcore.StringType, String: "api"}})
	assert.NoError(t, withFields.Write(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "boom", Time: time.Now()}, nil))
	assert.NoError(t, withFields.Sync())
}

func TestToOTelSeverity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, otellog.SeverityDebug, toOTelSeverity(zapcore.DebugLevel))
	assert.Equal(t, otellog.SeverityWarn, toOTelSeverity(zapcore.WarnLevel))
	assert.Equal(t, otellog.SeverityError, toOTelSeverity(zapcore.ErrorLevel))
	assert.Equal(t, otellog.SeverityFatal, toOTelSeverity(zapcore.FatalLevel))
}
