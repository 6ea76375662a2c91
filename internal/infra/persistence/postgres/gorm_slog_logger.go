package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger sends gorm output to the request logger. Statements are logged
// with placeholders only, since principal rows carry emails and password hashes.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

var (
	_ logger.Interface  = (*gormSlogLogger)(nil)
	_ gorm.ParamsFilter = (*gormSlogLogger)(nil)
)

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter drops bound values before gorm renders the statement for Trace.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < enabledAt {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries as errors and slow ones as warnings. Expected
// outcomes (no row, duplicate email or cafe name) stay at debug.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	switch {
	case err != nil && (isRecordNotFound(err) || isUniqueConstraintViolation(err)):
		l.log(ctx).LogAttrs(ctx, slog.LevelDebug, "GORM query rejected", append(attrs, slog.String("error", err.Error()))...)
	case err != nil && l.level >= logger.Error:
		l.log(ctx).LogAttrs(ctx, slog.LevelError, "GORM query failed", append(attrs, slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "GORM slow query", append(attrs, slog.Duration("slow_threshold", l.slowThreshold))...)
	case err == nil && l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "GORM query", attrs...)
	}
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
