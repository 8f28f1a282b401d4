package navigation

import (
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// HopCost is the simulated cost of one hop between two stars
type HopCost struct {
	Ticks    int
	Distance float64
	Warp     bool
	Wormhole bool
	Loiter   bool
}

// TravelCalculator provides the per-hop tick cost used by both the route
// search and the ETA aggregation. It holds no per-call state and is safe for
// concurrent use.
type TravelCalculator struct {
	speed     SpeedModel
	diplomacy galaxy.DiplomacyView
}

// NewTravelCalculator creates a travel calculator
func NewTravelCalculator(speed SpeedModel, diplomacy galaxy.DiplomacyView) *TravelCalculator {
	if diplomacy == nil {
		diplomacy = galaxy.NoDiplomacy{}
	}
	return &TravelCalculator{speed: speed, diplomacy: diplomacy}
}

// NewTravelCalculatorForSnapshot creates a travel calculator from a snapshot's
// constants and diplomacy
func NewTravelCalculatorForSnapshot(snapshot *galaxy.Snapshot) *TravelCalculator {
	return NewTravelCalculator(NewSpeedModel(snapshot.Constants()), snapshot.Diplomacy())
}

// SpeedModel returns the speed model the calculator uses
func (c *TravelCalculator) SpeedModel() SpeedModel {
	return c.speed
}

// HopTicks calculates the cost of traveling from source to dest for the
// given carrier, starting at the source star
func (c *TravelCalculator) HopTicks(
	source, dest *galaxy.Star,
	carrier *galaxy.Carrier,
	delayTicks int,
) (HopCost, error) {
	return c.HopTicksFrom(source.Location, source, dest, carrier, delayTicks)
}

// HopTicksFrom calculates the cost of the source → dest hop measuring the
// distance from origin. Warp eligibility is still decided by the two stars.
func (c *TravelCalculator) HopTicksFrom(
	origin shared.Location,
	source, dest *galaxy.Star,
	carrier *galaxy.Carrier,
	delayTicks int,
) (HopCost, error) {
	if delayTicks < 0 {
		return HopCost{}, shared.NewInvalidInputError("delay_ticks", fmt.Sprintf("must be >= 0, got %d", delayTicks))
	}

	if source.ID == dest.ID {
		return HopCost{Ticks: 1 + delayTicks, Loiter: true}, nil
	}

	distance := shared.Distance(origin, dest.Location)

	if IsWormholePair(source, dest) {
		return HopCost{Ticks: WormholeTicks(delayTicks), Distance: distance, Wormhole: true}, nil
	}

	warp := CanWarp(source, dest, carrier, c.diplomacy)
	tickDistance := c.speed.EffectiveTickDistance(warp, carrier.Specialist)

	ticks, err := TicksForDistance(distance, tickDistance)
	if err != nil {
		return HopCost{}, fmt.Errorf("hop %s → %s: %w", source.ID, dest.ID, err)
	}

	return HopCost{
		Ticks:    ticks + delayTicks,
		Distance: distance,
		Warp:     warp,
	}, nil
}
