// Package logger wraps zap for the report tooling. A Logger can travel in a
// context and picks up trace and pass identifiers from it.
package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appctx "boukir/internal/core/context"
)

// Logger is a zap SugaredLogger with context helpers.
type Logger struct {
	*zap.SugaredLogger
}

type ctxKey struct{}

// Config selects level, encoding and outputs.
type Config struct {
	Level       string   // debug, info, warn, error; anything else means info
	Development bool     // console encoder with colored levels
	OutputPaths []string // defaults to zap's stderr
}

// New builds a Logger.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}

	z, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return Wrap(z), nil
}

// NewNop discards everything.
func NewNop() *Logger {
	return Wrap(zap.NewNop())
}

// Wrap adapts a zap logger, e.g. one built on zaptest/observer.
func Wrap(z *zap.Logger) *Logger {
	return &Logger{z.Sugar()}
}

var (
	fallbackOnce sync.Once
	fallback     *Logger
)

// Default is a production logger on stdout, built on first use.
func Default() *Logger {
	fallbackOnce.Do(func() {
		zc := zap.NewProductionConfig()
		zc.OutputPaths = []string{"stdout"}
		z, err := zc.Build(zap.AddCallerSkip(1))
		if err != nil {
			z = zap.NewNop()
		}
		fallback = Wrap(z)
	})
	return fallback
}

// WithContext returns a child logger carrying trace_id, request_id and
// pass_id when ctx has them.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	var fields []any
	if t := appctx.GetTrace(ctx); t != nil {
		fields = append(fields, "trace_id", t.TraceID, "request_id", t.RequestID)
	}
	if pass := appctx.GetPassID(ctx); pass != "" {
		fields = append(fields, "pass_id", pass)
	}
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

// With returns a child logger with extra key-value pairs.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{l.SugaredLogger.With(keysAndValues...)}
}

// WithComponent tags entries with the emitting component.
func (l *Logger) WithComponent(name string) *Logger {
	return l.With("component", name)
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the context logger (or Default) enriched by WithContext.
func FromContext(ctx context.Context) *Logger {
	l, ok := ctx.Value(ctxKey{}).(*Logger)
	if !ok {
		l = Default()
	}
	return l.WithContext(ctx)
}

// Warn logs a recoverable problem through the context logger.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Warnw(msg, keysAndValues...)
}
