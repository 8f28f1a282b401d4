package routing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routingadapter "github.com/andrescamacho/galaxy-routing-go/internal/adapters/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/routing/queries"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

func TestLocalRoutePlanner_PlanRouteTranslatesQuery(t *testing.T) {
	// Arrange
	m := helpers.NewMockMediator()
	m.SetSendFunc(func(ctx context.Context, request common.Request) (common.Response, error) {
		return &queries.PlanRouteResponse{
			RouteID: "route-1",
			Stars:   []galaxy.StarID{"A", "C"},
			Hops: []navigation.RouteSegment{
				{From: "A", To: "C", Distance: 200, Ticks: 1, Wormhole: true},
			},
			TotalTicks:    1,
			TotalDistance: 200,
			Reachable:     true,
			Mode:          routing.SearchModeAStar,
			NodesExpanded: 2,
		}, nil
	})
	planner := routingadapter.NewLocalRoutePlanner(m)

	// Act
	resp, err := planner.PlanRoute(context.Background(), &routing.RouteRequest{
		GameID:            "game-1",
		CarrierID:         "C1",
		SourceStarID:      "A",
		DestinationStarID: "C",
		Mode:              "astar",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &queries.PlanRouteQuery{
		GameID:            "game-1",
		CarrierID:         "C1",
		SourceStarID:      "A",
		DestinationStarID: "C",
		Mode:              "astar",
	}, m.LastRequest())
	assert.Equal(t, "route-1", resp.RouteID)
	assert.Equal(t, []string{"A", "C"}, resp.Stars)
	assert.Equal(t, "astar", resp.Mode)
	require.Len(t, resp.Steps, 1)
	assert.True(t, resp.Steps[0].Wormhole)
	assert.Equal(t, 1, resp.TotalTicks)
}

func TestLocalRoutePlanner_EstimateArrival(t *testing.T) {
	// Arrange
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	arrival, err := shared.NewArrivalTime(now, 10, time.Minute)
	require.NoError(t, err)

	m := helpers.NewMockMediator()
	m.SetSendFunc(func(ctx context.Context, request common.Request) (common.Response, error) {
		return &queries.CarrierETAResponse{
			CarrierID:   "C1",
			PerWaypoint: []int{4, 6},
			Cumulative:  []int{4, 10},
			Total:       10,
			Arrival:     arrival,
		}, nil
	})
	upto := 1

	// Act
	resp, err := routingadapter.NewLocalRoutePlanner(m).EstimateArrival(context.Background(), &routing.ETARequest{
		GameID:       "game-1",
		CarrierID:    "C1",
		UptoWaypoint: &upto,
	})

	// Assert
	require.NoError(t, err)
	query, ok := m.LastRequest().(*queries.CarrierETAQuery)
	require.True(t, ok)
	assert.Equal(t, &upto, query.UptoWaypoint)
	assert.Equal(t, []int{4, 10}, resp.Cumulative)
	assert.Equal(t, 10, resp.Total)
	assert.Equal(t, now.Add(10*time.Minute), resp.ArrivesAt)
}

func TestLocalRoutePlanner_ReachableStars(t *testing.T) {
	// Arrange
	m := helpers.NewMockMediator()
	m.SetSendFunc(func(ctx context.Context, request common.Request) (common.Response, error) {
		return &queries.ReachableStarsResponse{StarID: "B", HyperspaceRange: 125, Neighbors: []galaxy.StarID{"A", "C"}}, nil
	})

	// Act
	resp, err := routingadapter.NewLocalRoutePlanner(m).ReachableStars(context.Background(), &routing.ReachableRequest{
		GameID:    "game-1",
		CarrierID: "C1",
		StarID:    "B",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "B", resp.StarID)
	assert.Equal(t, 125.0, resp.HyperspaceRange)
	assert.Equal(t, []string{"A", "C"}, resp.Neighbors)
}

func TestLocalRoutePlanner_PropagatesErrors(t *testing.T) {
	t.Run("handler error", func(t *testing.T) {
		// Arrange
		m := helpers.NewMockMediator()
		m.SetSendFunc(func(ctx context.Context, request common.Request) (common.Response, error) {
			return nil, shared.NewNotFoundError("carrier", "C9")
		})

		// Act
		_, err := routingadapter.NewLocalRoutePlanner(m).PlanRoute(context.Background(), &routing.RouteRequest{
			GameID: "game-1", CarrierID: "C9", DestinationStarID: "A",
		})

		// Assert
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("unexpected response type", func(t *testing.T) {
		// Arrange
		m := helpers.NewMockMediator()
		m.SetSendFunc(func(ctx context.Context, request common.Request) (common.Response, error) {
			return "not a response", nil
		})

		// Act
		_, err := routingadapter.NewLocalRoutePlanner(m).ReachableStars(context.Background(), &routing.ReachableRequest{
			GameID: "game-1", CarrierID: "C1",
		})

		// Assert
		require.Error(t, err)
		assert.False(t, errors.Is(err, shared.ErrNotFound))
		assert.Contains(t, err.Error(), "unexpected response type")
	})
}
