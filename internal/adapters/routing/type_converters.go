package routing

import (
	"github.com/andrescamacho/galaxy-routing-go/internal/application/routing/queries"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

func convertPlanRouteResponse(r *queries.PlanRouteResponse) *domainRouting.RouteResponse {
	steps := make([]*domainRouting.RouteStepData, len(r.Hops))
	for i, hop := range r.Hops {
		steps[i] = &domainRouting.RouteStepData{
			From:     string(hop.From),
			To:       string(hop.To),
			Distance: hop.Distance,
			Ticks:    hop.Ticks,
			Warp:     hop.Warp,
			Wormhole: hop.Wormhole,
		}
	}

	return &domainRouting.RouteResponse{
		RouteID:       r.RouteID,
		Stars:         starIDsToStrings(r.Stars),
		Steps:         steps,
		TotalTicks:    r.TotalTicks,
		TotalDistance: r.TotalDistance,
		Reachable:     r.Reachable,
		Mode:          string(r.Mode),
		NodesExpanded: r.NodesExpanded,
	}
}

func convertCarrierETAResponse(r *queries.CarrierETAResponse) *domainRouting.ETAResponse {
	return &domainRouting.ETAResponse{
		CarrierID:   string(r.CarrierID),
		PerWaypoint: append([]int{}, r.PerWaypoint...),
		Cumulative:  append([]int{}, r.Cumulative...),
		Total:       r.Total,
		ArrivesAt:   r.Arrival.At(),
	}
}

func convertReachableStarsResponse(r *queries.ReachableStarsResponse) *domainRouting.ReachableResponse {
	return &domainRouting.ReachableResponse{
		StarID:          string(r.StarID),
		HyperspaceRange: r.HyperspaceRange,
		Neighbors:       starIDsToStrings(r.Neighbors),
	}
}

func starIDsToStrings(ids []galaxy.StarID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
