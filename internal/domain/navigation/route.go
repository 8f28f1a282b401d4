package navigation

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
)

// RouteSegment represents an immutable hop of a planned route
type RouteSegment struct {
	From     galaxy.StarID
	To       galaxy.StarID
	Distance float64
	Ticks    int
	Warp     bool
	Wormhole bool
}

func (r RouteSegment) String() string {
	mode := ""
	switch {
	case r.Wormhole:
		mode = " [WORMHOLE]"
	case r.Warp:
		mode = " [WARP]"
	}
	return fmt.Sprintf("%s → %s (%.1fu, %d ticks)%s", r.From, r.To, r.Distance, r.Ticks, mode)
}

// Route is a planned star sequence for one carrier with its per-hop costs.
//
// Invariants:
// - Segments form a connected path (segment[i].To == segment[i+1].From)
// - A route of one star has no segments and costs zero ticks
type Route struct {
	routeID   string
	carrierID galaxy.CarrierID
	stars     []galaxy.StarID
	segments  []RouteSegment
}

// NewRoute creates a route with validation
func NewRoute(routeID string, carrierID galaxy.CarrierID, stars []galaxy.StarID, segments []RouteSegment) (*Route, error) {
	r := &Route{
		routeID:   routeID,
		carrierID: carrierID,
		stars:     append([]galaxy.StarID(nil), stars...),
		segments:  append([]RouteSegment(nil), segments...),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// BuildRoute prices each hop of stars with the calculator
func BuildRoute(
	routeID string,
	snapshot *galaxy.Snapshot,
	carrier *galaxy.Carrier,
	stars []galaxy.StarID,
) (*Route, error) {
	calculator := NewTravelCalculatorForSnapshot(snapshot)
	segments := make([]RouteSegment, 0, len(stars))

	for i := 0; i+1 < len(stars); i++ {
		from, err := snapshot.Star(stars[i])
		if err != nil {
			return nil, err
		}
		to, err := snapshot.Star(stars[i+1])
		if err != nil {
			return nil, err
		}
		cost, err := calculator.HopTicks(from, to, carrier, 0)
		if err != nil {
			return nil, err
		}
		segments = append(segments, RouteSegment{
			From:     from.ID,
			To:       to.ID,
			Distance: cost.Distance,
			Ticks:    cost.Ticks,
			Warp:     cost.Warp,
			Wormhole: cost.Wormhole,
		})
	}

	return NewRoute(routeID, carrier.ID, stars, segments)
}

func (r *Route) validate() error {
	if len(r.stars) == 0 {
		if len(r.segments) != 0 {
			return fmt.Errorf("route has %d segments but no stars", len(r.segments))
		}
		return nil
	}
	if len(r.segments) != len(r.stars)-1 {
		return fmt.Errorf("route has %d stars but %d segments", len(r.stars), len(r.segments))
	}
	for i, seg := range r.segments {
		if seg.From != r.stars[i] || seg.To != r.stars[i+1] {
			return fmt.Errorf("segment %d (%s → %s) does not follow the star sequence", i, seg.From, seg.To)
		}
	}
	return nil
}

// Getters

func (r *Route) RouteID() string {
	return r.routeID
}

func (r *Route) CarrierID() galaxy.CarrierID {
	return r.carrierID
}

func (r *Route) Stars() []galaxy.StarID {
	stars := make([]galaxy.StarID, len(r.stars))
	copy(stars, r.stars)
	return stars
}

func (r *Route) Segments() []RouteSegment {
	segments := make([]RouteSegment, len(r.segments))
	copy(segments, r.segments)
	return segments
}

// IsEmpty reports an unreachable destination
func (r *Route) IsEmpty() bool {
	return len(r.stars) == 0
}

// TotalTicks sums the segment ticks
func (r *Route) TotalTicks() int {
	total := 0
	for _, seg := range r.segments {
		total += seg.Ticks
	}
	return total
}

// TotalDistance sums the segment distances
func (r *Route) TotalDistance() float64 {
	total := 0.0
	for _, seg := range r.segments {
		total += seg.Distance
	}
	return total
}

// ToWaypoints converts the route into the waypoint chain a caller commits.
// delayTicks is applied to every waypoint.
func (r *Route) ToWaypoints(delayTicks int) []galaxy.Waypoint {
	waypoints := make([]galaxy.Waypoint, len(r.segments))
	for i, seg := range r.segments {
		waypoints[i] = galaxy.Waypoint{Source: seg.From, Destination: seg.To, DelayTicks: delayTicks}
	}
	return waypoints
}

func (r *Route) String() string {
	ids := make([]string, len(r.stars))
	for i, id := range r.stars {
		ids[i] = string(id)
	}
	return fmt.Sprintf("Route(id=%s, carrier=%s, stars=[%s], ticks=%d)",
		r.routeID, r.carrierID, strings.Join(ids, " → "), r.TotalTicks())
}
