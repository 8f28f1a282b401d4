package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/galaxy-routing-go/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records the duration and
// outcome of every query sent through the mediator.
//
// Query names are extracted via reflection without the package prefix:
// "*queries.PlanRouteQuery" becomes "PlanRouteQuery".
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		requestName := extractRequestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		duration := time.Since(start).Seconds()
		success := err == nil
		collector.RecordRequest(requestName, duration, success)

		return response, err
	}
}

// extractRequestName extracts a clean request name using reflection
// Examples:
//   - "*queries.PlanRouteQuery" → "PlanRouteQuery"
//   - "*queries.CarrierETAQuery" → "CarrierETAQuery"
func extractRequestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")

	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}

	return fullName
}
