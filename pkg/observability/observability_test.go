package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	require.NotNil(t, logger)
	require.True(t, logger.IsHealthy())
	require.NoError(t, logger.Flush(context.Background()))
	require.NoError(t, logger.Close())
	require.Same(t, logger, logger.WithField("k", "v"))
}

func TestTestLogger_RecordsAndSanitizes(t *testing.T) {
	logger := NewTestLogger()
	require.True(t, logger.IsHealthy())

	scoped := logger.WithField("strategy", "global").WithFields(map[string]any{"password": "hunter2"})
	scoped.Info("hello\r\nworld", map[string]any{"base_name": "my\nBucket"})
	logger.Debug("unscoped")

	entries := logger.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "info", entries[0].Level)
	require.Equal(t, "helloworld", entries[0].Message)
	require.Equal(t, "global", entries[0].Fields["strategy"])
	require.Equal(t, "[REDACTED]", entries[0].Fields["password"])
	require.Equal(t, "myBucket", entries[0].Fields["base_name"])
	require.Empty(t, entries[1].Fields)

	require.Len(t, logger.EntriesAt("debug"), 1)
	require.Empty(t, logger.EntriesAt("error"))
}

func TestTestLogger_CloseStopsRecording(t *testing.T) {
	logger := NewTestLogger()
	child := logger.WithField("k", "v")

	require.NoError(t, logger.Close())
	require.False(t, logger.IsHealthy())
	require.False(t, child.IsHealthy())

	child.Error("dropped")
	require.Empty(t, logger.Entries())
}

func TestTestLogger_FlushHonoursContext(t *testing.T) {
	logger := NewTestLogger()
	require.NoError(t, logger.Flush(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, logger.Flush(ctx), context.Canceled)
}
