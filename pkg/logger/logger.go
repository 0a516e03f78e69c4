package logger

import (
	"sync"

	"github.com/theory-cloud/cdknaming/pkg/observability"
)

var (
	globalMu     sync.RWMutex
	globalLogger observability.StructuredLogger = observability.NewNoOpLogger()
)

// Logger returns the process-wide logger used by the naming packages.
func Logger() observability.StructuredLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the process-wide logger and returns the previous one.
//
// Passing nil resets the logger to a no-op implementation.
func SetLogger(next observability.StructuredLogger) observability.StructuredLogger {
	globalMu.Lock()
	defer globalMu.Unlock()
	prev := globalLogger
	if next == nil {
		globalLogger = observability.NewNoOpLogger()
		return prev
	}
	globalLogger = next
	return prev
}
