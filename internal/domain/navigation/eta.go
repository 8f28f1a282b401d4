package navigation

import (
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// ETACalculator sums per-hop tick costs over a carrier's committed waypoints.
// The waypoint chain is taken as given; it need not be the shortest route.
type ETACalculator struct{}

// NewETACalculator creates an ETA calculator
func NewETACalculator() *ETACalculator {
	return &ETACalculator{}
}

// WaypointCosts returns the hop cost of every waypoint in order.
//
// A carrier that is between stars measures its first waypoint from its
// current location instead of the waypoint's source star.
func (e *ETACalculator) WaypointCosts(snapshot *galaxy.Snapshot, carrier *galaxy.Carrier) ([]HopCost, error) {
	calculator := NewTravelCalculatorForSnapshot(snapshot)
	costs := make([]HopCost, 0, len(carrier.Waypoints))

	for i, wp := range carrier.Waypoints {
		source, err := snapshot.Star(wp.Source)
		if err != nil {
			return nil, fmt.Errorf("waypoint %d source: %w", i, err)
		}
		dest, err := snapshot.Star(wp.Destination)
		if err != nil {
			return nil, fmt.Errorf("waypoint %d destination: %w", i, err)
		}

		origin := source.Location
		if i == 0 && carrier.IsInTransit() {
			origin = carrier.Location
		}

		cost, err := calculator.HopTicksFrom(origin, source, dest, carrier, wp.DelayTicks)
		if err != nil {
			return nil, fmt.Errorf("waypoint %d: %w", i, err)
		}
		costs = append(costs, cost)
	}

	return costs, nil
}

// EtaForWaypoints returns the tick count of every waypoint in order
func (e *ETACalculator) EtaForWaypoints(snapshot *galaxy.Snapshot, carrier *galaxy.Carrier) ([]int, error) {
	costs, err := e.WaypointCosts(snapshot, carrier)
	if err != nil {
		return nil, err
	}

	ticks := make([]int, len(costs))
	for i, cost := range costs {
		ticks[i] = cost.Ticks
	}
	return ticks, nil
}

// CumulativeEtas returns running totals: element i is the number of ticks
// until the carrier reaches the destination of waypoint i
func (e *ETACalculator) CumulativeEtas(snapshot *galaxy.Snapshot, carrier *galaxy.Carrier) ([]int, error) {
	ticks, err := e.EtaForWaypoints(snapshot, carrier)
	if err != nil {
		return nil, err
	}

	total := 0
	cumulative := make([]int, len(ticks))
	for i, t := range ticks {
		total += t
		cumulative[i] = total
	}
	return cumulative, nil
}

// CumulativeEta returns the ticks until the carrier reaches the destination
// of waypoint upto (inclusive)
func (e *ETACalculator) CumulativeEta(snapshot *galaxy.Snapshot, carrier *galaxy.Carrier, upto int) (int, error) {
	if upto < 0 || upto >= len(carrier.Waypoints) {
		return 0, shared.NewInvalidInputError("waypoint_index",
			fmt.Sprintf("%d out of range for %d waypoints", upto, len(carrier.Waypoints)))
	}

	partial := *carrier
	partial.Waypoints = carrier.Waypoints[:upto+1]

	ticks, err := e.EtaForWaypoints(snapshot, &partial)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, t := range ticks {
		total += t
	}
	return total, nil
}
