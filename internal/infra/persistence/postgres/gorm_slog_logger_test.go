package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "items"`, 3
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	reqLogger := l.logger.With(slog.String("request_id", "req-123"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("connection refused"))

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "req-123")
	assert.Contains(t, out, "connection refused")
}

func TestGormSlogLogger_ExpectedRejectionsStayAtDebug(t *testing.T) {
	for _, err := range []error{
		gorm.ErrRecordNotFound,
		errors.Wrap(gorm.ErrDuplicatedKey, "create vendor"),
		errors.New(`ERROR: duplicate key value violates unique constraint "idx_cafes_name_vendor" (SQLSTATE 23505)`),
	} {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, err)

		out := buf.String()
		assert.Contains(t, out, `"level":"DEBUG"`)
		assert.Contains(t, out, "GORM query rejected")
		assert.NotContains(t, out, `"level":"ERROR"`)
	}
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l, _ := newBufferedGormLogger(true)

	sql, vars := l.ParamsFilter(context.Background(), `INSERT INTO "vendors" ("email","password_hash") VALUES ($1,$2)`,
		"v@example.com", "$2a$10$hash")

	assert.Equal(t, `INSERT INTO "vendors" ("email","password_hash") VALUES ($1,$2)`, sql)
	assert.Empty(t, vars)
}

func TestGormSlogLogger_SlowAndDebugQueries(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	l, buf = newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	l, buf = newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), `"msg":"GORM query"`)
}
