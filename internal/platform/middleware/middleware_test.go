package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		rid, _ := c.Get("request_id").(string)
		return c.String(http.StatusOK, rid)
	}, RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Body.String() == "" {
		t.Fatal("request id not set in context")
	}
	if rec.Header().Get("X-Request-ID") != rec.Body.String() {
		t.Fatal("request id not echoed in response header")
	}
}

func TestRequestID_HonoursCallerID(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") != "caller-supplied" {
		t.Fatalf("request id = %q", rec.Header().Get("X-Request-ID"))
	}
}

func TestLogger_EmitsRequestLine(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf)

	e := echo.New()
	e.GET("/patients", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequestID(), Logger(logger))

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, `"path":"/patients"`) || !strings.Contains(line, `"status":200`) {
		t.Fatalf("unexpected log line: %s", line)
	}
	if !strings.Contains(line, `"request_id"`) {
		t.Fatalf("request id missing from log line: %s", line)
	}
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf)

	e := echo.New()
	e.GET("/boom", func(c echo.Context) error {
		panic("kaboom")
	}, Recovery(logger))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "kaboom") {
		t.Fatalf("panic not logged: %s", buf.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, SecurityHeaders())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("nosniff header missing")
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatal("cache-control header missing")
	}
}
