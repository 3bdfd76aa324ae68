package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestID_Generates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestID()
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rid, _ := c.Get("request_id").(string)
	if rid == "" {
		t.Error("expected request_id to be set")
	}
	if rec.Header().Get("X-Request-ID") != rid {
		t.Error("expected request id echoed on response header")
	}
}

func TestRequestID_HonorsIncoming(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "incoming-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestID()
	_ = mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	if rid, _ := c.Get("request_id").(string); rid != "incoming-id" {
		t.Errorf("expected incoming-id, got %s", rid)
	}
}

func TestRecovery_ConvertsPanic(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := zerolog.Nop()
	mw := Recovery(logger)
	err := mw(func(c echo.Context) error {
		panic("boom")
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 HTTPError, got %v", err)
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := zerolog.Nop()
	mw := Logger(logger)
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
