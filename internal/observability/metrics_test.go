package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func scrape(t *testing.T, metrics *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	return rr.Body.String()
}

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	metrics := NewMetrics()

	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}))

	routeCtx := chi.NewRouteContext()
	routeCtx.RoutePatterns = append(routeCtx.RoutePatterns, "/clientes/create")

	req := httptest.NewRequest(http.MethodPost, "/clientes/create", nil)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rr.Code)
	}

	body := scrape(t, metrics)
	if !strings.Contains(body, "console_http_requests_total{code=\"303\",route=\"/clientes/create\"} 1") {
		t.Fatalf("expected metrics to record request, got: %s", body)
	}
	if !strings.Contains(body, "console_http_request_duration_seconds_bucket{route=\"/clientes/create\"") {
		t.Fatalf("expected duration histogram to be present, got: %s", body)
	}
}

func TestObserveRemote(t *testing.T) {
	metrics := NewMetrics()
	metrics.ObserveRemote(http.MethodGet, "Clientes", http.StatusOK, 20*time.Millisecond)
	metrics.ObserveRemote(http.MethodGet, "Clientes", 0, time.Second)

	body := scrape(t, metrics)
	if !strings.Contains(body, "console_api_requests_total{code=\"200\",method=\"GET\",resource=\"Clientes\"} 1") {
		t.Fatalf("expected successful call to be counted, got: %s", body)
	}
	if !strings.Contains(body, "console_api_requests_total{code=\"0\",method=\"GET\",resource=\"Clientes\"} 1") {
		t.Fatalf("expected failed call to be counted, got: %s", body)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var metrics *Metrics
	metrics.ObserveRemote(http.MethodGet, "Clientes", http.StatusOK, time.Millisecond)

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}
