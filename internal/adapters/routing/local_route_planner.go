package routing

import (
	"context"
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/routing/queries"
	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

// LocalRoutePlanner implements RoutePlanner in-process by sending routing
// queries through the mediator
type LocalRoutePlanner struct {
	mediator common.Mediator
}

// NewLocalRoutePlanner creates a planner over a mediator with the routing
// query handlers registered
func NewLocalRoutePlanner(mediator common.Mediator) *LocalRoutePlanner {
	return &LocalRoutePlanner{mediator: mediator}
}

// PlanRoute searches the cheapest route for a carrier
func (p *LocalRoutePlanner) PlanRoute(ctx context.Context, req *domainRouting.RouteRequest) (*domainRouting.RouteResponse, error) {
	response, err := p.mediator.Send(ctx, &queries.PlanRouteQuery{
		GameID:            req.GameID,
		CarrierID:         req.CarrierID,
		SourceStarID:      req.SourceStarID,
		DestinationStarID: req.DestinationStarID,
		Mode:              req.Mode,
	})
	if err != nil {
		return nil, err
	}

	result, ok := response.(*queries.PlanRouteResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", response)
	}
	return convertPlanRouteResponse(result), nil
}

// EstimateArrival aggregates the ETA of a carrier's waypoint list
func (p *LocalRoutePlanner) EstimateArrival(ctx context.Context, req *domainRouting.ETARequest) (*domainRouting.ETAResponse, error) {
	response, err := p.mediator.Send(ctx, &queries.CarrierETAQuery{
		GameID:       req.GameID,
		CarrierID:    req.CarrierID,
		UptoWaypoint: req.UptoWaypoint,
	})
	if err != nil {
		return nil, err
	}

	result, ok := response.(*queries.CarrierETAResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", response)
	}
	return convertCarrierETAResponse(result), nil
}

// ReachableStars lists the stars within a carrier's hyperspace range
func (p *LocalRoutePlanner) ReachableStars(ctx context.Context, req *domainRouting.ReachableRequest) (*domainRouting.ReachableResponse, error) {
	response, err := p.mediator.Send(ctx, &queries.ReachableStarsQuery{
		GameID:    req.GameID,
		CarrierID: req.CarrierID,
		StarID:    req.StarID,
	})
	if err != nil {
		return nil, err
	}

	result, ok := response.(*queries.ReachableStarsResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", response)
	}
	return convertReachableStarsResponse(result), nil
}
