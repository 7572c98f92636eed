package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/products/:id", "404", 3*time.Millisecond)
	m.ObserveRequest("GET", "/api/products/:id", "404", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/products/:id", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.IncInFlight()
	m.ObserveRequest("POST", "/api/products", "201", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(body, `catalog_http_requests_total{method="POST",path="/api/products",status="201"} 1`))
	assert.True(t, strings.Contains(body, "catalog_http_inflight_requests 1"))
}

func TestNewUsesSeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveRequest("GET", "/", "200", time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.httpRequests.WithLabelValues("GET", "/", "200")))
}
