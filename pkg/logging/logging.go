package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger with a level that can change at runtime.
type Logger struct {
	*zap.Logger
	Level zap.AtomicLevel
}

// New builds a logger for mode ("development" or "production") at the given level.
func New(mode, level string) (*Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(mode, "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	atomic := zap.NewAtomicLevel()
	if level != "" {
		if err := atomic.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
		}
	}
	cfg.Level = atomic
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return &Logger{Logger: logger, Level: atomic}, nil
}

// Wrap adapts an existing zap logger, mostly for tests.
func Wrap(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{Logger: logger, Level: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
}

// Telemetry records service events as structured log entries.
type Telemetry struct {
	logger *zap.Logger
}

// NewTelemetry names the logger "telemetry" so events can be filtered.
func NewTelemetry(logger *Logger) *Telemetry {
	if logger == nil {
		logger = Wrap(nil)
	}
	return &Telemetry{logger: logger.Named("telemetry")}
}

// Record writes one debug entry per event. Failures are logged at warn level.
func (t *Telemetry) Record(_ context.Context, event string, payload map[string]any) {
	fields := make([]zap.Field, 0, len(payload)+1)
	fields = append(fields, zap.String("event", event))
	for k, v := range payload {
		fields = append(fields, zap.Any(k, v))
	}
	if strings.HasSuffix(event, ".failed") || strings.HasSuffix(event, ".rejected") {
		t.logger.Warn("dashboard event", fields...)
		return
	}
	t.logger.Debug("dashboard event", fields...)
}
