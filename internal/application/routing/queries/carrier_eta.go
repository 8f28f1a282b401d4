package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/metrics"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// CarrierETAQuery asks how many ticks a carrier's committed waypoints take
type CarrierETAQuery struct {
	GameID       string
	CarrierID    string
	UptoWaypoint *int // Optional: stop at this waypoint index (inclusive)
}

// CarrierETAResponse holds per-waypoint and running tick totals
type CarrierETAResponse struct {
	CarrierID   galaxy.CarrierID
	Hops        []navigation.HopCost
	PerWaypoint []int
	Cumulative  []int
	Total       int
	Arrival     shared.ArrivalTime
}

// CarrierETAHandler handles the CarrierETA query
type CarrierETAHandler struct {
	snapshots galaxy.SnapshotRepository
	eta       *navigation.ETACalculator
	clock     shared.Clock
}

// NewCarrierETAHandler creates a new CarrierETAHandler. A nil clock uses the
// system time.
func NewCarrierETAHandler(snapshots galaxy.SnapshotRepository, clock shared.Clock) *CarrierETAHandler {
	if clock == nil {
		clock = shared.RealClock{}
	}
	return &CarrierETAHandler{
		snapshots: snapshots,
		eta:       navigation.NewETACalculator(),
		clock:     clock,
	}
}

// Handle executes the CarrierETA query
func (h *CarrierETAHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*CarrierETAQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CarrierETAQuery")
	}

	if err := requireFields(map[string]string{
		"game_id":    query.GameID,
		"carrier_id": query.CarrierID,
	}); err != nil {
		return nil, err
	}

	snapshot, carrier, err := loadCarrier(ctx, h.snapshots, query.GameID, query.CarrierID)
	if err != nil {
		return nil, err
	}

	if query.UptoWaypoint != nil {
		upto := *query.UptoWaypoint
		if upto < 0 || upto >= len(carrier.Waypoints) {
			return nil, shared.NewInvalidInputError("upto_waypoint",
				fmt.Sprintf("%d out of range for %d waypoints", upto, len(carrier.Waypoints)))
		}
		partial := *carrier
		partial.Waypoints = carrier.Waypoints[:upto+1]
		carrier = &partial
	}

	hops, err := h.eta.WaypointCosts(snapshot, carrier)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ETA for carrier %s: %w", carrier.ID, err)
	}

	response := &CarrierETAResponse{
		CarrierID:   carrier.ID,
		Hops:        hops,
		PerWaypoint: make([]int, len(hops)),
		Cumulative:  make([]int, len(hops)),
	}
	for i, hop := range hops {
		response.Total += hop.Ticks
		response.PerWaypoint[i] = hop.Ticks
		response.Cumulative[i] = response.Total
	}

	arrival, err := shared.NewArrivalTime(h.clock.Now(), response.Total, snapshot.Constants().TickInterval)
	if err != nil {
		return nil, err
	}
	response.Arrival = arrival

	metrics.RecordETAComputation(len(hops), response.Total)
	common.LoggerFromContext(ctx).Log("DEBUG",
		fmt.Sprintf("[CarrierETA] %s arrives in %d ticks over %d waypoints", carrier.ID, response.Total, len(hops)),
		map[string]interface{}{"game_id": query.GameID})

	return response, nil
}
