package config

import (
	"net"
	"strconv"
)

// MetricsConfig configures the routing daemon's HTTP side port: the
// Prometheus scrape endpoint and the readiness check served next to it
type MetricsConfig struct {
	// Enabled registers the routing and command collectors and serves Path
	Enabled bool `mapstructure:"enabled"`

	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Path of the scrape endpoint (default: /metrics)
	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`

	// HealthPath answers 200 once the gRPC listener is serving, 503 before (default: /healthz)
	HealthPath string `mapstructure:"health_path" validate:"omitempty,startswith=/"`
}

// Address returns the host:port the side port listens on
func (m MetricsConfig) Address() string {
	return net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
}
