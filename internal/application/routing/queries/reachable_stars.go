package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// ReachableStarsQuery asks which stars a carrier can hop to directly
type ReachableStarsQuery struct {
	GameID    string
	CarrierID string
	StarID    string // Optional: defaults to the star the carrier orbits
}

// ReachableStarsResponse lists the one-hop neighbors of a star
type ReachableStarsResponse struct {
	StarID          galaxy.StarID
	HyperspaceRange float64
	Neighbors       []galaxy.StarID
}

// ReachableStarsHandler handles the ReachableStars query
type ReachableStarsHandler struct {
	snapshots galaxy.SnapshotRepository
}

// NewReachableStarsHandler creates a new ReachableStarsHandler
func NewReachableStarsHandler(snapshots galaxy.SnapshotRepository) *ReachableStarsHandler {
	return &ReachableStarsHandler{snapshots: snapshots}
}

// Handle executes the ReachableStars query
func (h *ReachableStarsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ReachableStarsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ReachableStarsQuery")
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

	starID := galaxy.StarID(query.StarID)
	if starID == "" {
		if carrier.IsInTransit() {
			return nil, shared.NewInvalidInputError("star_id",
				fmt.Sprintf("carrier %s is in transit, a star is required", carrier.ID))
		}
		starID = carrier.Orbiting
	}

	star, err := snapshot.Star(starID)
	if err != nil {
		return nil, err
	}

	hsRange := snapshot.HyperspaceRange(carrier)
	neighbors := navigation.NeighborsOf(star, snapshot.Stars(), hsRange)
	if neighbors == nil {
		neighbors = []galaxy.StarID{}
	}

	return &ReachableStarsResponse{
		StarID:          star.ID,
		HyperspaceRange: hsRange,
		Neighbors:       neighbors,
	}, nil
}
