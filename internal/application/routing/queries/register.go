package queries

import (
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/application/mediator"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// RegisterHandlers wires the routing query handlers into the mediator
func RegisterHandlers(
	m mediator.Mediator,
	snapshots galaxy.SnapshotRepository,
	defaultMode routing.SearchMode,
	clock shared.Clock,
) error {
	if err := mediator.RegisterHandler[*PlanRouteQuery](m, NewPlanRouteHandler(snapshots, defaultMode)); err != nil {
		return fmt.Errorf("failed to register PlanRoute handler: %w", err)
	}
	if err := mediator.RegisterHandler[*CarrierETAQuery](m, NewCarrierETAHandler(snapshots, clock)); err != nil {
		return fmt.Errorf("failed to register CarrierETA handler: %w", err)
	}
	if err := mediator.RegisterHandler[*ReachableStarsQuery](m, NewReachableStarsHandler(snapshots)); err != nil {
		return fmt.Errorf("failed to register ReachableStars handler: %w", err)
	}
	return nil
}
