package galaxy

import (
	"fmt"
	"math"
	"time"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// Constants are the galaxy-wide travel settings of a game
type Constants struct {
	// LightYear is the distance unit hyperspace range is expressed in
	LightYear float64
	// CarrierSpeed is the distance a carrier covers per tick without warp
	CarrierSpeed float64
	// WarpSpeedMultiplier scales CarrierSpeed on warp-eligible hops
	WarpSpeedMultiplier float64
	// TickInterval is the wall-clock length of a tick; zero when unknown
	TickInterval time.Duration
}

// DefaultConstants matches the standard galaxy settings
func DefaultConstants() Constants {
	return Constants{
		LightYear:           50,
		CarrierSpeed:        25,
		WarpSpeedMultiplier: 3,
	}
}

// HyperspaceRange returns the maximum direct hop distance for a hyperspace
// tech level. Levels below 1 are treated as level 1.
func (c Constants) HyperspaceRange(level int) float64 {
	if level < 1 {
		level = 1
	}
	return (float64(level) + 1.5) * c.LightYear
}

// Validate rejects non-positive or non-finite settings
func (c Constants) Validate() error {
	if !isPositiveFinite(c.LightYear) {
		return invalidf("constants.light_year", "must be positive and finite, got %v", c.LightYear)
	}
	if !isPositiveFinite(c.CarrierSpeed) {
		return invalidf("constants.carrier_speed", "must be positive and finite, got %v", c.CarrierSpeed)
	}
	if !isPositiveFinite(c.WarpSpeedMultiplier) {
		return invalidf("constants.warp_speed_multiplier", "must be positive and finite, got %v", c.WarpSpeedMultiplier)
	}
	if c.TickInterval < 0 {
		return invalidf("constants.tick_interval", "must be >= 0, got %s", c.TickInterval)
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func invalidf(field, format string, args ...interface{}) error {
	return shared.NewInvalidInputError(field, fmt.Sprintf(format, args...))
}
