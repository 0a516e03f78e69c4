package zap

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theory-cloud/cdknaming/pkg/observability"
	"github.com/theory-cloud/cdknaming/pkg/sanitization"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

type Option func(*loggerOptions)

type loggerOptions struct {
	zapLogger *ubzap.Logger
	sink      zapcore.WriteSyncer
	sanitizer observability.SanitizerFunc
}

// WithZapLogger logs through an existing zap logger instead of building one
// from the config.
func WithZapLogger(logger *ubzap.Logger) Option {
	return func(opts *loggerOptions) {
		opts.zapLogger = logger
	}
}

// WithWriteSyncer redirects output; the default is stderr so stdout stays
// free for command output.
func WithWriteSyncer(sink zapcore.WriteSyncer) Option {
	return func(opts *loggerOptions) {
		opts.sink = sink
	}
}

func WithSanitizer(fn observability.SanitizerFunc) Option {
	return func(opts *loggerOptions) {
		opts.sanitizer = fn
	}
}

type Logger struct {
	log       *ubzap.Logger
	sanitizer observability.SanitizerFunc
	closed    *atomic.Bool
}

var _ observability.StructuredLogger = (*Logger)(nil)

func NewZapLogger(config observability.LoggerConfig, options ...Option) (observability.StructuredLogger, error) {
	opts := &loggerOptions{
		sink:      zapcore.Lock(os.Stderr),
		sanitizer: sanitization.SanitizeFieldValue,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}

	base := opts.zapLogger
	if base == nil {
		level, err := parseZapLevel(config.Level)
		if err != nil {
			return nil, err
		}

		enc := zapEncoderConfig(config.EnableCaller)
		var encoder zapcore.Encoder
		switch strings.ToLower(strings.TrimSpace(config.Format)) {
		case "console", "":
			encoder = zapcore.NewConsoleEncoder(enc)
		case "json":
			encoder = zapcore.NewJSONEncoder(enc)
		default:
			return nil, errors.New("observability/zap: unsupported log format")
		}

		base = ubzap.New(zapcore.NewCore(encoder, opts.sink, level))
		if config.EnableCaller {
			base = base.WithOptions(ubzap.AddCaller(), ubzap.AddCallerSkip(1))
		}
	}

	return &Logger{
		log:       base,
		sanitizer: opts.sanitizer,
		closed:    &atomic.Bool{},
	}, nil
}

func parseZapLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case levelDebug:
		return zapcore.DebugLevel, nil
	case levelInfo, "":
		return zapcore.InfoLevel, nil
	case levelWarn, "warning":
		return zapcore.WarnLevel, nil
	case levelError:
		return zapcore.ErrorLevel, nil
	default:
		return 0, errors.New("observability/zap: unsupported log level")
	}
}

func zapEncoderConfig(enableCaller bool) zapcore.EncoderConfig {
	enc := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if enableCaller {
		enc.CallerKey = "caller"
		enc.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return enc
}

func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.logEntry(zapcore.DebugLevel, message, fields...)
}
func (l *Logger) Info(message string, fields ...map[string]any) {
	l.logEntry(zapcore.InfoLevel, message, fields...)
}
func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.logEntry(zapcore.WarnLevel, message, fields...)
}
func (l *Logger) Error(message string, fields ...map[string]any) {
	l.logEntry(zapcore.ErrorLevel, message, fields...)
}

func (l *Logger) WithField(key string, value any) observability.StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) WithFields(fields map[string]any) observability.StructuredLogger {
	return &Logger{
		log:       l.log.With(l.zapFields(fields)...),
		sanitizer: l.sanitizer,
		closed:    l.closed,
	}
}

func (l *Logger) Flush(ctx context.Context) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	err := l.log.Sync()
	if isIgnorableSyncError(err) {
		return nil
	}
	return err
}

func (l *Logger) Close() error {
	if l.closed.Swap(true) {
		return nil
	}
	return l.Flush(context.Background())
}

func (l *Logger) IsHealthy() bool {
	return l != nil && l.log != nil && !l.closed.Load()
}

func (l *Logger) logEntry(level zapcore.Level, message string, fields ...map[string]any) {
	if l == nil || l.closed.Load() {
		return
	}
	ce := l.log.Check(level, sanitization.SanitizeLogString(message))
	if ce == nil {
		return
	}
	var zfs []zapcore.Field
	for _, set := range fields {
		zfs = append(zfs, l.zapFields(set)...)
	}
	ce.Write(zfs...)
}

// zapFields converts a field map in key order so output is stable.
func (l *Logger) zapFields(fields map[string]any) []zapcore.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zapcore.Field, 0, len(keys))
	for _, k := range keys {
		v := fields[k]
		if l.sanitizer != nil {
			v = l.sanitizer(k, v)
		}
		out = append(out, ubzap.Any(k, v))
	}
	return out
}

// Syncing a terminal or pipe returns EINVAL/ENOTTY on most platforms.
func isIgnorableSyncError(err error) bool {
	if err == nil {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}
