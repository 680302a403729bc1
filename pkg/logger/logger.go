package logger

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// Field is a structured log attribute.
type Field struct {
	Key   string
	Value any
}

// Logger is the logging interface consumed by services.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
}

// AppLogger wraps slog; in non-dev environments records are also
// exported through the OpenTelemetry log bridge.
type AppLogger struct {
	base *slog.Logger
}

// NewLogger builds the application logger for the given environment.
// serviceName names the logger on the OTel bridge path.
func NewLogger(appEnv, serviceName string) *AppLogger {
	if appEnv == "development" || appEnv == "" {
		handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
		return &AppLogger{base: slog.New(handler)}
	}
	return &AppLogger{base: otelslog.NewLogger(serviceName)}
}

func (l *AppLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.base.DebugContext(ctx, msg, toAttrs(fields)...)
}

func (l *AppLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.base.InfoContext(ctx, msg, toAttrs(fields)...)
}

func (l *AppLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.base.WarnContext(ctx, msg, toAttrs(fields)...)
}

func (l *AppLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.base.ErrorContext(ctx, msg, toAttrs(fields)...)
}

func toAttrs(fields []Field) []any {
	attrs := make([]any, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	return attrs
}
