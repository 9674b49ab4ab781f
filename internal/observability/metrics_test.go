package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsHandlerExposesClientMetrics(t *testing.T) {
	metrics := NewMetrics()
	metrics.ObserveRequest("GET /products", http.StatusOK, 25*time.Millisecond)
	metrics.ObserveStaleDrop()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	metrics.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "dms_client_requests_total") {
		t.Fatalf("expected body to contain dms_client_requests_total, got: %s", body)
	}
	if !strings.Contains(body, "dms_client_stale_loads_dropped_total") {
		t.Fatalf("expected body to contain dms_client_stale_loads_dropped_total, got: %s", body)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var metrics *Metrics

	metrics.ObserveRequest("GET /drivers", 0, 0)
	metrics.ObserveStaleDrop()

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}
