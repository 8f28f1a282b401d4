package routing

import (
	"context"
	"time"
)

// RoutePlanner answers route and travel-time questions about a game. It is
// implemented in-process over the mediator and remotely over gRPC.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, request *RouteRequest) (*RouteResponse, error)
	EstimateArrival(ctx context.Context, request *ETARequest) (*ETAResponse, error)
	ReachableStars(ctx context.Context, request *ReachableRequest) (*ReachableResponse, error)
}

// DTOs for routing operations

type RouteRequest struct {
	GameID            string
	CarrierID         string
	SourceStarID      string // Optional: defaults to the star the carrier orbits
	DestinationStarID string
	Mode              string // "dijkstra" or "astar", empty for the configured default
}

type RouteResponse struct {
	RouteID       string
	Stars         []string
	Steps         []*RouteStepData
	TotalTicks    int
	TotalDistance float64
	Reachable     bool
	Mode          string
	NodesExpanded int
}

type RouteStepData struct {
	From     string
	To       string
	Distance float64
	Ticks    int
	Warp     bool
	Wormhole bool
}

type ETARequest struct {
	GameID       string
	CarrierID    string
	UptoWaypoint *int // Optional: cumulative ETA up to this waypoint index
}

type ETAResponse struct {
	CarrierID   string
	PerWaypoint []int
	Cumulative  []int
	Total       int
	ArrivesAt   time.Time // Zero when the game's tick interval is unknown
}

type ReachableRequest struct {
	GameID    string
	CarrierID string
	StarID    string // Optional: defaults to the star the carrier orbits
}

type ReachableResponse struct {
	StarID          string
	HyperspaceRange float64
	Neighbors       []string
}
