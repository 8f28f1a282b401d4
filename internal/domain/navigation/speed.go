package navigation

import (
	"fmt"
	"math"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// SpeedModel converts distances into whole ticks
type SpeedModel struct {
	BaseSpeed      float64
	WarpMultiplier float64
}

// NewSpeedModel builds a speed model from the galaxy constants
func NewSpeedModel(constants galaxy.Constants) SpeedModel {
	return SpeedModel{
		BaseSpeed:      constants.CarrierSpeed,
		WarpMultiplier: constants.WarpSpeedMultiplier,
	}
}

// EffectiveTickDistance is the distance covered per tick on a hop
func (m SpeedModel) EffectiveTickDistance(warp bool, specialist *galaxy.Specialist) float64 {
	tickDistance := m.BaseSpeed
	if warp {
		tickDistance *= m.WarpMultiplier
	}
	return tickDistance * specialist.SpeedModifier()
}

// MaxTickDistance is the largest tick distance a carrier with the given
// specialist can reach on any hop
func (m SpeedModel) MaxTickDistance(specialist *galaxy.Specialist) float64 {
	return m.EffectiveTickDistance(m.WarpMultiplier > 1, specialist)
}

// TicksForDistance returns the minimum whole number of ticks to cover
// distance at tickDistance per tick, never less than 1.
//
// One division keeps a single rounding step. Subtracting tickDistance tick by
// tick accumulates error when it is not exact in binary (25 * 1.1) and can
// count one tick too many.
func TicksForDistance(distance, tickDistance float64) (int, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return 0, shared.NewInvalidInputError("distance", fmt.Sprintf("must be finite and >= 0, got %v", distance))
	}
	if math.IsNaN(tickDistance) || math.IsInf(tickDistance, 0) || tickDistance <= 0 {
		return 0, shared.NewInvalidInputError("tick_distance", fmt.Sprintf("must be finite and > 0, got %v", tickDistance))
	}

	ticks := math.Ceil(distance / tickDistance)
	if ticks < 1 {
		return 1, nil
	}
	if ticks > math.MaxInt32 {
		return 0, shared.NewInvalidInputError("distance", fmt.Sprintf("%v takes too many ticks at %v per tick", distance, tickDistance))
	}
	return int(ticks), nil
}
