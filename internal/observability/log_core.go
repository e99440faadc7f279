package observability

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const (
	logInstrumentation = "hitting-tracker/internal/platform/logging"
	healthPath         = "/healthz"
	maxLogValueDepth   = 3
)

// otelLogCore forwards zap entries to the global OpenTelemetry logger
// provider, which uptrace configures.
type otelLogCore struct {
	zapcore.LevelEnabler
	logger otellog.Logger
	fields []zapcore.Field
}

func newOTelLogCore(serviceVersion string, level zapcore.LevelEnabler) zapcore.Core {
	return &otelLogCore{
		LevelEnabler: level,
		logger: otelglobal.Logger(
			logInstrumentation,
			otellog.WithInstrumentationVersion(serviceVersion),
		),
	}
}

func (c *otelLogCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field(nil), c.fields...), fields...)
	return &clone
}

func (c *otelLogCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *otelLogCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	if skipLogRecord(ent.Message, enc.Fields) {
		return nil
	}

	ctx := context.Background()
	severity := toOTelSeverity(ent.Level)
	if !c.logger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: ent.Message}) {
		return nil
	}

	var record otellog.Record
	record.SetTimestamp(ent.Time)
	record.SetObservedTimestamp(time.Now().UTC())
	record.SetSeverity(severity)
	record.SetSeverityText(strings.ToUpper(ent.Level.String()))
	record.SetEventName(ent.Message)
	record.SetBody(otellog.StringValue(ent.Message))
	if ent.LoggerName != "" {
		record.AddAttributes(otellog.String("logger", ent.LoggerName))
	}
	record.AddAttributes(logAttributes(enc.Fields)...)

	c.logger.Emit(ctx, record)
	return nil
}

func (c *otelLogCore) Sync() error { return nil }

// skipLogRecord drops access logs for health probes.
func skipLogRecord(msg string, fields map[string]any) bool {
	if msg != "http_request" {
		return false
	}
	path, _ := fields["http_path"].(string)
	return path == healthPath
}

func logAttributes(fields map[string]any) []otellog.KeyValue {
	return logAttributesAt(fields, 0)
}

func toOTelSeverity(level zapcore.Level) otellog.Severity {
	switch {
	case level <= zapcore.DebugLevel:
		return otellog.SeverityDebug
	case level == zapcore.InfoLevel:
		return otellog.SeverityInfo
	case level == zapcore.WarnLevel:
		return otellog.SeverityWarn
	case level >= zapcore.DPanicLevel:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityError
	}
}

// toOTelLogValue converts values produced by zapcore.MapObjectEncoder.
func toOTelLogValue(value any, depth int) otellog.Value {
	if value == nil {
		return otellog.Value{}
	}
	if depth >= maxLogValueDepth {
		return otellog.StringValue(fmt.Sprint(value))
	}

	switch v := value.(type) {
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case int:
		return otellog.IntValue(v)
	case int32:
		return otellog.Int64Value(int64(v))
	case int64:
		return otellog.Int64Value(v)
	case uint32:
		return otellog.Int64Value(int64(v))
	case float32:
		return otellog.Float64Value(float64(v))
	case float64:
		return otellog.Float64Value(v)
	case []byte:
		return otellog.BytesValue(append([]byte(nil), v...))
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return otellog.StringValue(v.String())
	case []any:
		items := make([]otellog.Value, 0, len(v))
		for _, item := range v {
			items = append(items, toOTelLogValue(item, depth+1))
		}
		return otellog.SliceValue(items...)
	case map[string]any:
		return otellog.MapValue(logAttributesAt(v, depth+1)...)
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	default:
		return otellog.StringValue(fmt.Sprint(v))
	}
}

func logAttributesAt(fields map[string]any, depth int) []otellog.KeyValue {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]otellog.KeyValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, otellog.KeyValue{Key: k, Value: toOTelLogValue(fields[k], depth)})
	}
	return out
}
