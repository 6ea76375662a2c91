package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolWatchInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// watchPool logs whenever callers had to wait for a pooled connection.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, ok := poolWaitReport(prev, cur); ok {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport compares two snapshots and reports false when no caller waited
// for a connection in between.
func poolWaitReport(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("wait_count", waits),
		slog.Duration("wait_duration", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
