package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eats/config"
	deliverycontext "eats/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "client id kept", header: "req-123", wantKept: true},
		{name: "missing id generated"},
		{name: "id with spaces replaced", header: "req 123"},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.Default()).Process)

			var fromEcho, fromContext string
			e.GET("/", func(c echo.Context) error {
				fromEcho = deliverycontext.GetRequestID(c)
				fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, fromEcho)
			assert.Equal(t, got, fromContext)
			if tt.wantKept {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/restaurants/:id", func(c echo.Context) error { return c.String(http.StatusNotFound, "missing") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	req := httptest.NewRequest(http.MethodGet, "/restaurants/9?lat=18.3", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "HTTP request", line["msg"])
	assert.Equal(t, "req-9", line["request_id"])
	assert.Equal(t, "/restaurants/:id", line["route"])
	assert.Equal(t, "lat=18.3", line["query"])
	assert.InDelta(t, http.StatusNotFound, line["status"], 0)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/meta", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/meta", nil))

	assert.Empty(t, buf.String())
}
