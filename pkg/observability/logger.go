package observability

import (
	"context"
	"time"
)

type SanitizerFunc func(key string, value any) any

// LogEntry represents a structured log entry.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// StructuredLogger is the logging surface shared by the naming packages and
// the cdkname tool: a message plus optional maps of fields.
type StructuredLogger interface {
	Debug(message string, fields ...map[string]any)
	Info(message string, fields ...map[string]any)
	Warn(message string, fields ...map[string]any)
	Error(message string, fields ...map[string]any)

	WithField(key string, value any) StructuredLogger
	WithFields(fields map[string]any) StructuredLogger

	Flush(ctx context.Context) error
	Close() error
	IsHealthy() bool
}

// LoggerConfig configures logger implementations.
type LoggerConfig struct {
	Format       string `json:"format" yaml:"format"`
	Level        string `json:"level" yaml:"level"`
	EnableCaller bool   `json:"enable_caller" yaml:"enable_caller"`
}

func mergeFields(base map[string]any, extra ...map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, set := range extra {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}
