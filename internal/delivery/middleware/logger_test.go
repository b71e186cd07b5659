package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce/config"
	deliverycontext "commerce/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLoggedEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/carts/current", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/orders/checkout", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	})

	return e
}

func serve(e *echo.Echo, method, path string, headers map[string]string) int {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestLoggerMiddleware_Debug(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, true)

	serve(e, http.MethodGet, "/health", nil)
	assert.Zero(t, buf.Len())

	serve(e, http.MethodGet, "/carts/current", map[string]string{deliverycontext.HeaderXSessionToken: "guest-1"})
	assert.Contains(t, buf.String(), `"msg":"Request served"`)
	assert.Contains(t, buf.String(), `"guest_session":true`)
	assert.NotContains(t, buf.String(), "guest-1")
}

func TestLoggerMiddleware_OnlyServerErrorsWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, false)

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/carts/current", nil))
	assert.Zero(t, buf.Len())

	assert.Equal(t, http.StatusServiceUnavailable, serve(e, http.MethodPost, "/orders/checkout", nil))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"status":503`)
}
