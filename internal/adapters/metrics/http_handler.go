package metrics

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the daemon's HTTP side port: the Prometheus scrape endpoint
// at metricsPath (only when metrics are enabled) and a readiness check at
// healthPath that reports ready() as 200 or 503
func NewRouter(metricsPath, healthPath string, ready func() bool) *mux.Router {
	router := mux.NewRouter()

	if IsEnabled() {
		router.Handle(metricsPath, promhttp.HandlerFor(Registry, promhttp.HandlerOpts{
			Registry: Registry,
		})).Methods(http.MethodGet)
	}

	router.HandleFunc(healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if ready != nil && !ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(w, "not ready")
			return
		}
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)

	return router
}
