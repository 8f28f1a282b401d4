package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/metrics"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// PlanRouteQuery asks for the minimum-tick route of a carrier between two stars
type PlanRouteQuery struct {
	GameID            string
	CarrierID         string
	SourceStarID      string // Optional: defaults to the star the carrier orbits
	DestinationStarID string
	Mode              string // Optional: "dijkstra" or "astar"
}

// PlanRouteResponse is the planned route. An unreachable destination is not
// an error: Reachable is false and Stars is empty.
type PlanRouteResponse struct {
	RouteID       string
	Stars         []galaxy.StarID
	Hops          []navigation.RouteSegment
	TotalTicks    int
	TotalDistance float64
	Reachable     bool
	Mode          routing.SearchMode
	NodesExpanded int
}

// PlanRouteHandler handles the PlanRoute query
type PlanRouteHandler struct {
	snapshots   galaxy.SnapshotRepository
	defaultMode routing.SearchMode
	newRouteID  func() string
}

// NewPlanRouteHandler creates a new PlanRouteHandler
func NewPlanRouteHandler(snapshots galaxy.SnapshotRepository, defaultMode routing.SearchMode) *PlanRouteHandler {
	if defaultMode == "" {
		defaultMode = routing.SearchModeDijkstra
	}
	return &PlanRouteHandler{
		snapshots:   snapshots,
		defaultMode: defaultMode,
		newRouteID:  uuid.NewString,
	}
}

// Handle executes the PlanRoute query
func (h *PlanRouteHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*PlanRouteQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PlanRouteQuery")
	}

	if err := requireFields(map[string]string{
		"game_id":             query.GameID,
		"carrier_id":          query.CarrierID,
		"destination_star_id": query.DestinationStarID,
	}); err != nil {
		return nil, err
	}

	mode := h.defaultMode
	if query.Mode != "" {
		parsed, err := routing.ParseSearchMode(query.Mode)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}

	logger := common.LoggerFromContext(ctx)

	snapshot, carrier, err := loadCarrier(ctx, h.snapshots, query.GameID, query.CarrierID)
	if err != nil {
		return nil, err
	}

	source := galaxy.StarID(query.SourceStarID)
	if source == "" {
		if carrier.IsInTransit() {
			return nil, shared.NewInvalidInputError("source_star_id",
				fmt.Sprintf("carrier %s is in transit, a source star is required", carrier.ID))
		}
		source = carrier.Orbiting
	}
	dest := galaxy.StarID(query.DestinationStarID)

	start := time.Now()
	result, err := routing.NewPathfinderForSnapshot(snapshot, mode).SearchSnapshot(snapshot, carrier, source, dest)
	if err != nil {
		metrics.RecordSearchFailure(string(mode))
		return nil, fmt.Errorf("failed to search route %s → %s: %w", source, dest, err)
	}
	metrics.RecordRouteSearch(string(mode), result.Reachable, result.Stats.NodesExpanded, result.TotalTicks,
		time.Since(start).Seconds())

	response := &PlanRouteResponse{
		Stars:         result.Stars,
		Hops:          []navigation.RouteSegment{},
		Reachable:     result.Reachable,
		Mode:          mode,
		NodesExpanded: result.Stats.NodesExpanded,
	}

	if !result.Reachable {
		logger.Log("INFO", fmt.Sprintf("[PlanRoute] %s cannot reach %s from %s", carrier.ID, dest, source), map[string]interface{}{
			"game_id":        query.GameID,
			"nodes_expanded": result.Stats.NodesExpanded,
		})
		return response, nil
	}

	route, err := navigation.BuildRoute(h.newRouteID(), snapshot, carrier, result.Stars)
	if err != nil {
		return nil, fmt.Errorf("failed to build route: %w", err)
	}

	response.RouteID = route.RouteID()
	response.Hops = route.Segments()
	response.TotalTicks = route.TotalTicks()
	response.TotalDistance = route.TotalDistance()

	logger.Log("INFO", fmt.Sprintf("[PlanRoute] %s", route), map[string]interface{}{
		"game_id":        query.GameID,
		"mode":           string(mode),
		"nodes_expanded": result.Stats.NodesExpanded,
	})

	return response, nil
}

// loadCarrier loads the game snapshot and looks up one of its carriers
func loadCarrier(
	ctx context.Context,
	snapshots galaxy.SnapshotRepository,
	gameID, carrierID string,
) (*galaxy.Snapshot, *galaxy.Carrier, error) {
	snapshot, err := snapshots.Load(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load game %s: %w", gameID, err)
	}

	carrier, err := snapshot.Carrier(galaxy.CarrierID(carrierID))
	if err != nil {
		return nil, nil, err
	}

	return snapshot, carrier, nil
}

// requireFields returns an InvalidInput error for the first empty field in
// name order
func requireFields(fields map[string]string) error {
	for _, name := range []string{"game_id", "carrier_id", "destination_star_id"} {
		value, ok := fields[name]
		if ok && value == "" {
			return shared.NewInvalidInputError(name, "is required")
		}
	}
	return nil
}
