package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

func TestBuildRoute_PricesEachHop(t *testing.T) {
	// Arrange
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

	// Act
	route, err := navigation.BuildRoute("route-1", snapshot, &carrier, []galaxy.StarID{"A", "B", "C"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "route-1", route.RouteID())
	assert.Equal(t, galaxy.CarrierID("C1"), route.CarrierID())
	assert.Equal(t, 8, route.TotalTicks())
	assert.Equal(t, 200.0, route.TotalDistance())
	require.Len(t, route.Segments(), 2)
	assert.Equal(t, "A → B (100.0u, 4 ticks)", route.Segments()[0].String())
	assert.Equal(t, "Route(id=route-1, carrier=C1, stars=[A → B → C], ticks=8)", route.String())
}

func TestBuildRoute_SingleStarCostsNothing(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

	route, err := navigation.BuildRoute("r", snapshot, &carrier, []galaxy.StarID{"A"})

	require.NoError(t, err)
	assert.False(t, route.IsEmpty())
	assert.Empty(t, route.Segments())
	assert.Equal(t, 0, route.TotalTicks())
}

func TestBuildRoute_EmptyIsUnreachable(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

	route, err := navigation.BuildRoute("r", snapshot, &carrier, nil)

	require.NoError(t, err)
	assert.True(t, route.IsEmpty())
	assert.Empty(t, route.ToWaypoints(0))
}

func TestNewRoute_RejectsDisconnectedSegments(t *testing.T) {
	_, err := navigation.NewRoute("r", "C1",
		[]galaxy.StarID{"A", "B", "C"},
		[]navigation.RouteSegment{{From: "A", To: "B"}, {From: "A", To: "C"}})

	assert.Error(t, err)
}

func TestRoute_ToWaypointsFeedsETA(t *testing.T) {
	// Arrange
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)
	route, err := navigation.BuildRoute("r", snapshot, &carrier, []galaxy.StarID{"A", "B", "C"})
	require.NoError(t, err)

	// Act
	carrier.Waypoints = route.ToWaypoints(1)
	ticks, err := navigation.NewETACalculator().EtaForWaypoints(snapshot, &carrier)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5}, ticks)
	assert.Equal(t, galaxy.Waypoint{Source: "B", Destination: "C", DelayTicks: 1}, carrier.Waypoints[1])
}
