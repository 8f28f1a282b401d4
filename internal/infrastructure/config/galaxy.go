package config

import (
	"time"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
)

// GalaxyConfig holds the travel constants used when a snapshot does not
// carry its own
type GalaxyConfig struct {
	// Distance unit of hyperspace range
	LightYear float64 `mapstructure:"light_year" validate:"gt=0"`

	// Distance a carrier covers per tick without warp
	CarrierSpeed float64 `mapstructure:"carrier_speed" validate:"gt=0"`

	// Speed multiplier on warp-eligible hops
	WarpSpeedMultiplier float64 `mapstructure:"warp_speed_multiplier" validate:"gt=0"`

	// Wall-clock length of a tick, zero when ETAs should stay in ticks
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"min=0"`
}

// Constants converts the configuration into galaxy constants
func (c GalaxyConfig) Constants() galaxy.Constants {
	return galaxy.Constants{
		LightYear:           c.LightYear,
		CarrierSpeed:        c.CarrierSpeed,
		WarpSpeedMultiplier: c.WarpSpeedMultiplier,
		TickInterval:        c.TickInterval,
	}
}
