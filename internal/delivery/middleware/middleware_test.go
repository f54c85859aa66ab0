package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wordtrainer/config"
	deliverycontext "wordtrainer/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLoggedEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ok", func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside handler")

		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream down")
	})

	return e
}

func get(e *echo.Echo, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, false)

	rec := get(e, "/ok", http.Header{"X-Request-Id": {"client-id-1"}})

	assert.Equal(t, "client-id-1", rec.Body.String())
	assert.Equal(t, "client-id-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id=client-id-1")
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "missing", id: ""},
		{name: "control characters", id: "abc\tdef"},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newLoggedEcho(&buf, false)

			rec := get(e, "/ok", http.Header{"X-Request-Id": {tt.id}})

			assert.NotEmpty(t, rec.Body.String())
			assert.NotEqual(t, tt.id, rec.Body.String())
			assert.Equal(t, rec.Body.String(), rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestLoggerMiddleware_SuccessOnlyInDebug(t *testing.T) {
	var quiet bytes.Buffer
	get(newLoggedEcho(&quiet, false), "/ok", nil)
	assert.NotContains(t, quiet.String(), "HTTP request")

	var verbose bytes.Buffer
	get(newLoggedEcho(&verbose, true), "/ok?x=1", nil)
	assert.Contains(t, verbose.String(), "HTTP request")
	assert.Contains(t, verbose.String(), "status=200")
	assert.Contains(t, verbose.String(), `query="x=1"`)
}

func TestLoggerMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	get(newLoggedEcho(&buf, true), "/health", nil)

	assert.NotContains(t, buf.String(), "HTTP request")
}

func TestLoggerMiddleware_FailuresAlwaysLogged(t *testing.T) {
	var buf bytes.Buffer
	rec := get(newLoggedEcho(&buf, false), "/boom", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=502")
	assert.Contains(t, buf.String(), "route=/boom")
}
