package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RoutingMetricsCollector handles route search and ETA metrics
type RoutingMetricsCollector struct {
	// Search metrics
	searchesTotal  *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	nodesExpanded  *prometheus.HistogramVec
	routeTicks     *prometheus.HistogramVec

	// ETA metrics
	etaTotal     prometheus.Counter
	etaWaypoints prometheus.Histogram
}

// NewRoutingMetricsCollector creates a new routing metrics collector
func NewRoutingMetricsCollector() *RoutingMetricsCollector {
	return &RoutingMetricsCollector{
		// Route searches by mode and outcome
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "route_searches_total",
				Help:      "Total number of route searches by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),

		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "route_search_duration_seconds",
				Help:      "Route search duration distribution",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"mode"},
		),

		// Work done per search
		nodesExpanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "route_search_nodes_expanded",
				Help:      "Stars expanded per route search",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"mode"},
		),

		routeTicks: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "route_ticks",
				Help:      "Tick cost of found routes",
				Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200},
			},
			[]string{"mode"},
		),

		etaTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "eta_computations_total",
				Help:      "Total number of waypoint ETA aggregations",
			},
		),

		etaWaypoints: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "eta_waypoints",
				Help:      "Waypoints per ETA aggregation",
				Buckets:   []float64{1, 2, 4, 8, 16, 32},
			},
		),
	}
}

// Register registers all routing metrics with the Prometheus registry
func (c *RoutingMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.searchesTotal,
		c.searchDuration,
		c.nodesExpanded,
		c.routeTicks,
		c.etaTotal,
		c.etaWaypoints,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordRouteSearch records a completed search. Route ticks are only
// observed for reachable destinations.
func (c *RoutingMetricsCollector) RecordRouteSearch(
	mode string,
	reachable bool,
	nodesExpanded int,
	totalTicks int,
	duration float64,
) {
	outcome := "found"
	if !reachable {
		outcome = "unreachable"
	}

	c.searchesTotal.WithLabelValues(mode, outcome).Inc()
	c.searchDuration.WithLabelValues(mode).Observe(duration)
	c.nodesExpanded.WithLabelValues(mode).Observe(float64(nodesExpanded))

	if reachable {
		c.routeTicks.WithLabelValues(mode).Observe(float64(totalTicks))
	}
}

// RecordSearchFailure records a search rejected with an error
func (c *RoutingMetricsCollector) RecordSearchFailure(mode string) {
	c.searchesTotal.WithLabelValues(mode, "error").Inc()
}

// RecordETAComputation records one waypoint ETA aggregation
func (c *RoutingMetricsCollector) RecordETAComputation(waypoints int, totalTicks int) {
	c.etaTotal.Inc()
	c.etaWaypoints.Observe(float64(waypoints))
}
