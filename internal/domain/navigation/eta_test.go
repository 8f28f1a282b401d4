package navigation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

func TestEtaForWaypoints_Reflexive(t *testing.T) {
	stars := helpers.LineStars()
	eta := navigation.NewETACalculator()

	for i := range stars {
		for delay := 0; delay < 4; delay++ {
			// Arrange
			carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[i],
				galaxy.Waypoint{Source: stars[i].ID, Destination: stars[i].ID, DelayTicks: delay})
			snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

			// Act
			ticks, err := eta.EtaForWaypoints(snapshot, &carrier)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, []int{1 + delay}, ticks)
		}
	}
}

func TestEtaForWaypoints_LineRoute(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0],
		galaxy.Waypoint{Source: "A", Destination: "B"},
		galaxy.Waypoint{Source: "B", Destination: "C", DelayTicks: 3},
		galaxy.Waypoint{Source: "C", Destination: "C", DelayTicks: 1},
	)
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)
	eta := navigation.NewETACalculator()

	ticks, err := eta.EtaForWaypoints(snapshot, &carrier)
	require.NoError(t, err)
	cumulative, err := eta.CumulativeEtas(snapshot, &carrier)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 7, 2}, ticks)
	assert.Equal(t, []int{4, 11, 13}, cumulative)
}

func TestEtaForWaypoints_WormholeWaypoint(t *testing.T) {
	stars := helpers.LineStars()
	stars[0].WormholeTo = "C"
	stars[2].WormholeTo = "A"
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0],
		galaxy.Waypoint{Source: "A", Destination: "C", DelayTicks: 2})
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

	ticks, err := navigation.NewETACalculator().EtaForWaypoints(snapshot, &carrier)

	require.NoError(t, err)
	assert.Equal(t, []int{3}, ticks)
}

func TestEtaForWaypoints_MidTransitFirstWaypointUsesCarrierLocation(t *testing.T) {
	// Arrange
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0],
		galaxy.Waypoint{Source: "A", Destination: "C"},
		galaxy.Waypoint{Source: "C", Destination: "A"},
	)
	carrier.Orbiting = ""
	carrier.Location = shared.Location{X: 50, Y: 0}
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

	// Act
	ticks, err := navigation.NewETACalculator().EtaForWaypoints(snapshot, &carrier)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6, ticks[0], "150 units from the carrier's position")
	assert.Equal(t, 8, ticks[1], "later waypoints measure from their source star")
}

func TestEtaForWaypoints_OrbitingCarrierUsesSourceStar(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[1],
		galaxy.Waypoint{Source: "A", Destination: "C"})
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

	ticks, err := navigation.NewETACalculator().EtaForWaypoints(snapshot, &carrier)

	require.NoError(t, err)
	assert.Equal(t, []int{8}, ticks)
}

func TestEtaForWaypoints_UnknownStar(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0],
		galaxy.Waypoint{Source: "A", Destination: "Q"})
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

	_, err := navigation.NewETACalculator().EtaForWaypoints(snapshot, &carrier)

	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	assert.Contains(t, err.Error(), "waypoint 0 destination")
}

func TestCumulativeEta_MatchesSumOfWaypoints(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	eta := navigation.NewETACalculator()

	for round := 0; round < 25; round++ {
		// Arrange
		stars := helpers.RandomGalaxy(rng, 10, 500)
		waypoints := make([]galaxy.Waypoint, 1+rng.Intn(6))
		current := stars[rng.Intn(len(stars))].ID
		for i := range waypoints {
			next := stars[rng.Intn(len(stars))].ID
			waypoints[i] = galaxy.Waypoint{Source: current, Destination: next, DelayTicks: rng.Intn(3)}
			current = next
		}
		carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0], waypoints...)
		if rng.Intn(2) == 0 {
			carrier.Orbiting = ""
			carrier.Location = shared.Location{X: rng.Float64() * 500, Y: rng.Float64() * 500}
		}
		snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)

		// Act
		ticks, err := eta.EtaForWaypoints(snapshot, &carrier)
		require.NoError(t, err)

		// Assert
		sum := 0
		for n := range ticks {
			sum += ticks[n]
			total, err := eta.CumulativeEta(snapshot, &carrier, n)
			require.NoError(t, err)
			assert.Equal(t, sum, total, "round %d waypoint %d", round, n)
		}
	}
}

func TestCumulativeEta_IndexOutOfRange(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0],
		galaxy.Waypoint{Source: "A", Destination: "B"})
	snapshot := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)
	eta := navigation.NewETACalculator()

	_, err := eta.CumulativeEta(snapshot, &carrier, 1)
	assert.True(t, shared.IsInvalidInput(err))

	_, err = eta.CumulativeEta(snapshot, &carrier, -1)
	assert.True(t, shared.IsInvalidInput(err))
}
