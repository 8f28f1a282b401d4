package config

import "time"

// DaemonConfig holds routing daemon configuration
type DaemonConfig struct {
	// gRPC listen address (host:port)
	Address string `mapstructure:"address" validate:"required"`

	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// Request rate limit applied to all gRPC methods
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}

// RateLimitConfig holds token bucket settings
type RateLimitConfig struct {
	// Requests per second
	Requests float64 `mapstructure:"requests" validate:"gt=0"`

	// Burst size
	Burst int `mapstructure:"burst" validate:"min=1"`
}
