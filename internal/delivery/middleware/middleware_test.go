package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		expectNew bool
	}{
		{name: "generated when absent", header: "", expectNew: true},
		{name: "client id reused", header: "client-req_1.2:3", expectNew: false},
		{name: "client id with spaces replaced", header: "bad id", expectNew: true},
		{name: "client id too long replaced", header: strings.Repeat("a", maxRequestIDLength+1), expectNew: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/cafe/item", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenCtxID string
			var seenLogger *slog.Logger
			handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil)

				return nil
			})

			require.NoError(t, handler(c))

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			assert.Equal(t, id, seenCtxID)
			assert.NotNil(t, seenLogger)
			if tt.expectNew {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.header, id)
			}
		})
	}
}

func newTestLoggerMiddleware(buf *bytes.Buffer, debug bool) *LoggerMiddleware {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(logger, cfg)
}

func decodeLogLine(t *testing.T, r io.Reader) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&line))

	return line
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Parallel()

	t.Run("logs status predicted from app error with caller", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		m := newTestLoggerMiddleware(&buf, true)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/cafe/item", nil), httptest.NewRecorder())

		identity := &entity.Identity{SubjectID: uuid.New(), Email: "v@example.com", Role: entity.RoleVendor}
		err := m.Handle(func(c echo.Context) error {
			deliverycontext.SetIdentity(c, identity)

			return domainerrors.ErrCafeOwnership
		})(c)
		require.ErrorIs(t, err, domainerrors.ErrCafeOwnership)

		line := decodeLogLine(t, &buf)
		assert.Equal(t, "WARN", line["level"])
		assert.Equal(t, float64(http.StatusForbidden), line["status"])
		assert.Equal(t, identity.SubjectID.String(), line["subject_id"])
		assert.Equal(t, "vendor", line["role"])
	})

	t.Run("unknown error logs as 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		m := newTestLoggerMiddleware(&buf, true)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/cafe/item", nil), httptest.NewRecorder())

		_ = m.Handle(func(echo.Context) error { return io.ErrUnexpectedEOF })(c)

		line := decodeLogLine(t, &buf)
		assert.Equal(t, "ERROR", line["level"])
		assert.Equal(t, float64(http.StatusInternalServerError), line["status"])
	})

	t.Run("success uses written status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		m := newTestLoggerMiddleware(&buf, true)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/cafe/item", nil), httptest.NewRecorder())

		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusCreated) })(c))

		line := decodeLogLine(t, &buf)
		assert.Equal(t, "INFO", line["level"])
		assert.Equal(t, float64(http.StatusCreated), line["status"])
		assert.NotContains(t, line, "subject_id")
	})

	t.Run("silent when debug is off or for health", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		e := echo.New()
		ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

		off := newTestLoggerMiddleware(&buf, false)
		require.NoError(t, off.Handle(ok)(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/cafe/item", nil), httptest.NewRecorder())))

		on := newTestLoggerMiddleware(&buf, true)
		require.NoError(t, on.Handle(ok)(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())))

		assert.Zero(t, buf.Len())
	})
}
