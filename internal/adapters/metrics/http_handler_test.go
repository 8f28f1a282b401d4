package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_ServesMetricsAndHealth(t *testing.T) {
	// Arrange
	InitRegistry()
	defer func() { Registry = nil }()
	collector := NewRoutingMetricsCollector()
	require.NoError(t, collector.Register())
	collector.RecordRouteSearch("dijkstra", true, 3, 8, 0.001)
	router := NewRouter("/metrics", "/healthz", func() bool { return true })

	// Act
	metricsRec := httptest.NewRecorder()
	router.ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// Assert
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "galaxy_routing_engine_")
	assert.Equal(t, http.StatusOK, healthRec.Code)
	assert.Equal(t, "ok\n", healthRec.Body.String())
}

func TestNewRouter_NotReady(t *testing.T) {
	router := NewRouter("/metrics", "/healthz", func() bool { return false })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewRouter_MetricsDisabled(t *testing.T) {
	Registry = nil
	router := NewRouter("/metrics", "/healthz", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRouter_CustomHealthPath(t *testing.T) {
	router := NewRouter("/metrics", "/ready", func() bool { return true })

	custom := httptest.NewRecorder()
	router.ServeHTTP(custom, httptest.NewRequest(http.MethodGet, "/ready", nil))
	legacy := httptest.NewRecorder()
	router.ServeHTTP(legacy, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, custom.Code)
	assert.Equal(t, http.StatusNotFound, legacy.Code)
}
