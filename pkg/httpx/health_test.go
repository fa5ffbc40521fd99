package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/carbuilder/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func serveHealth(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, resp
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		EventBus: &stubChecker{},
		Redis:    &stubChecker{},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if resp["status"] != "ok" {
		t.Errorf("status: got %q, want %q", resp["status"], "ok")
	}
}

func TestHealthHandler_RedisDisabled(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{EventBus: &stubChecker{}})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if resp["redis"] != "disabled" {
		t.Errorf("redis: got %q, want %q", resp["redis"], "disabled")
	}
}

func TestHealthHandler_RedisDown(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		EventBus: &stubChecker{},
		Redis:    &stubChecker{err: errors.New("timeout")},
	})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if resp["status"] != "degraded" || resp["redis"] != "unreachable" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHealthHandler_EventBusDown(t *testing.T) {
	rr, resp := serveHealth(t, httpx.HealthChecks{
		EventBus: &stubChecker{err: errors.New("closed")},
	})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if resp["status"] != "degraded" || resp["event_bus"] != "unreachable" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	httpx.HealthHandler(httpx.HealthChecks{EventBus: &stubChecker{}}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
