package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWaitReport(t *testing.T) {
	t.Parallel()

	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		t.Parallel()

		_, _, ok := poolWaitReport(prev, prev)
		assert.False(t, ok)
	})

	t.Run("short waits are debug", func(t *testing.T) {
		t.Parallel()

		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond, MaxOpenConnections: 10}
		level, attrs, ok := poolWaitReport(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelDebug, level)

		byKey := make(map[string]slog.Value, len(attrs))
		for _, a := range attrs {
			byKey[a.Key] = a.Value
		}
		assert.Equal(t, int64(2), byKey["wait_count"].Int64())
		assert.Equal(t, 10*time.Millisecond, byKey["avg_wait"].Duration())
	})

	t.Run("long waits are warnings", func(t *testing.T) {
		t.Parallel()

		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + poolWaitWarnAfter}
		level, _, ok := poolWaitReport(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
