package config

import "time"

// RoutingConfig holds route search and routing client configuration
type RoutingConfig struct {
	// Default search mode: "dijkstra" or "astar"
	Mode string `mapstructure:"mode" validate:"required,oneof=dijkstra astar"`

	// Upper bound on one routing request, enforced by the daemon
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required"`

	// Routing daemon gRPC address used by remote clients (host:port)
	Address string `mapstructure:"address" validate:"required"`

	// Dial timeout for remote clients
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"required"`
}
