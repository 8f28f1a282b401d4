package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

func TestIsWormholePair(t *testing.T) {
	a := helpers.NewStar("A", 0, 0)
	b := helpers.NewStar("B", 5000, 0)

	assert.False(t, navigation.IsWormholePair(&a, &b))

	a.WormholeTo = "B"
	assert.False(t, navigation.IsWormholePair(&a, &b), "one-sided link")

	b.WormholeTo = "A"
	assert.True(t, navigation.IsWormholePair(&a, &b))
	assert.True(t, navigation.IsWormholePair(&b, &a))

	a.WormholeTo = "A"
	assert.False(t, navigation.IsWormholePair(&a, &a), "self link")
}

func TestHopTicks_WormholeIgnoresDistanceAndWarp(t *testing.T) {
	for _, distance := range []float64{10, 200, 12345} {
		for _, warp := range []bool{false, true} {
			for delay := 0; delay < 4; delay++ {
				// Arrange
				a := helpers.NewStar("A", 0, 0)
				b := helpers.NewStar("B", distance, 0)
				a.WormholeTo, b.WormholeTo = "B", "A"
				a.Owner, b.Owner = helpers.PlayerOne, helpers.PlayerOne
				a.WarpGate, b.WarpGate = warp, warp
				carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &a)
				calculator := navigation.NewTravelCalculator(
					navigation.NewSpeedModel(helpers.ScenarioConstants()), galaxy.NoDiplomacy{})

				// Act
				cost, err := calculator.HopTicks(&a, &b, &carrier, delay)

				// Assert
				require.NoError(t, err)
				assert.Equal(t, 1+delay, cost.Ticks)
				assert.True(t, cost.Wormhole)
				assert.False(t, cost.Warp)
			}
		}
	}
}
