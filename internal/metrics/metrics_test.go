package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGeneration(t *testing.T) {
	m := New()
	m.ObserveGeneration("Strong")
	m.ObserveGeneration("Strong")
	m.ObserveGeneration("Weak")

	if got := testutil.ToFloat64(m.generations.WithLabelValues("Strong")); got != 2 {
		t.Errorf("Strong generations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.generations.WithLabelValues("Weak")); got != 1 {
		t.Errorf("Weak generations = %v, want 1", got)
	}
}

func TestSetWeakSource(t *testing.T) {
	m := New()
	m.SetWeakSource(true)
	if got := testutil.ToFloat64(m.weakSource); got != 1 {
		t.Errorf("weak source gauge = %v, want 1", got)
	}
	m.SetWeakSource(false)
	if got := testutil.ToFloat64(m.weakSource); got != 0 {
		t.Errorf("weak source gauge = %v, want 0", got)
	}
}

func TestIndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	a, b := New(), New()
	a.ObserveFailure("empty_pool")

	if got := testutil.ToFloat64(b.failures.WithLabelValues("empty_pool")); got != 0 {
		t.Errorf("second instance saw %v failures, want 0", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/api/v1/generate", "200", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `passgen_http_requests_total{method="POST",route="/api/v1/generate",status="200"} 1`) {
		t.Errorf("request counter missing from output:\n%s", rec.Body.String())
	}
}
