// Package logger wraps zap with request-context awareness: loggers
// travel on the context and automatically pick up trace and user
// fields stamped by the HTTP middleware.
package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appctx "vendia/internal/core/context"
)

// Config controls log level and output format.
type Config struct {
	Level       string // debug, info, warn, error
	Development bool   // console encoder with colored levels
	OutputPaths []string
}

// Logger is a zap.SugaredLogger that knows how to enrich itself from
// a context.
type Logger struct {
	*zap.SugaredLogger
}

// New builds a Logger. An unknown level falls back to info rather
// than failing startup.
func New(cfg Config) (*Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}

	base, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{base.Sugar()}, nil
}

var (
	fallbackOnce sync.Once
	fallback     *Logger
)

// Default is the process-wide logger used when none was put on the
// context, e.g. in tests or before cmd wiring runs.
func Default() *Logger {
	fallbackOnce.Do(func() {
		zc := zap.NewProductionConfig()
		zc.OutputPaths = []string{"stdout"}
		base, _ := zc.Build(zap.AddCallerSkip(1))
		fallback = &Logger{base.Sugar()}
	})
	return fallback
}

// WithContext returns a child logger carrying the trace and user
// fields found on ctx. Missing fields are simply omitted.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	out := l.SugaredLogger

	if tc := appctx.GetTrace(ctx); tc != nil {
		out = out.With("trace_id", tc.TraceID, "request_id", tc.RequestID)
	}
	if uc := appctx.GetUser(ctx); uc != nil {
		out = out.With("user_id", uc.UserID, "company_id", uc.CompanyID)
	}

	return &Logger{out}
}

// With returns a child logger with extra key-value pairs.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{l.SugaredLogger.With(keysAndValues...)}
}

type ctxKey struct{}

// WithLogger puts the logger on the context for downstream code.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the context's logger, enriched with the
// context's trace and user fields. Falls back to Default.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l.WithContext(ctx)
	}
	return Default().WithContext(ctx)
}

// Debug logs through the context's logger at debug level.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Debugw(msg, keysAndValues...)
}

// Info logs through the context's logger at info level.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Infow(msg, keysAndValues...)
}

// Warn logs through the context's logger at warn level.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Warnw(msg, keysAndValues...)
}

// Error logs through the context's logger at error level.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Errorw(msg, keysAndValues...)
}
