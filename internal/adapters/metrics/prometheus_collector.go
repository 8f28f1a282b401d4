package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "galaxy_routing"
	// Subsystem for engine metrics
	subsystem = "engine"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalRoutingCollector is the singleton routing metrics collector
	// Set by SetGlobalRoutingCollector() when metrics are enabled
	globalRoutingCollector RoutingMetricsRecorder
)

// RoutingMetricsRecorder defines the interface for recording route search
// and ETA metrics. Application handlers record through the package-level
// functions below.
type RoutingMetricsRecorder interface {
	RecordRouteSearch(mode string, reachable bool, nodesExpanded int, totalTicks int, duration float64)
	RecordSearchFailure(mode string)
	RecordETAComputation(waypoints int, totalTicks int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalRoutingCollector sets the global routing metrics collector
func SetGlobalRoutingCollector(collector RoutingMetricsRecorder) {
	globalRoutingCollector = collector
}

// RecordRouteSearch records a completed route search globally
func RecordRouteSearch(mode string, reachable bool, nodesExpanded int, totalTicks int, duration float64) {
	if globalRoutingCollector != nil {
		globalRoutingCollector.RecordRouteSearch(mode, reachable, nodesExpanded, totalTicks, duration)
	}
}

// RecordSearchFailure records a route search that returned an error globally
func RecordSearchFailure(mode string) {
	if globalRoutingCollector != nil {
		globalRoutingCollector.RecordSearchFailure(mode)
	}
}

// RecordETAComputation records a waypoint ETA aggregation globally
func RecordETAComputation(waypoints int, totalTicks int) {
	if globalRoutingCollector != nil {
		globalRoutingCollector.RecordETAComputation(waypoints, totalTicks)
	}
}
