package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

func newCalculator() *navigation.TravelCalculator {
	return navigation.NewTravelCalculator(navigation.NewSpeedModel(helpers.ScenarioConstants()), nil)
}

func TestHopTicks_NormalHop(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])

	cost, err := newCalculator().HopTicks(&stars[0], &stars[1], &carrier, 2)

	require.NoError(t, err)
	assert.Equal(t, 6, cost.Ticks)
	assert.Equal(t, 100.0, cost.Distance)
	assert.False(t, cost.Warp)
}

func TestHopTicks_WarpHop(t *testing.T) {
	stars := helpers.LineStars()
	for i := range stars {
		stars[i].Owner = helpers.PlayerOne
		stars[i].WarpGate = true
	}
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])

	cost, err := newCalculator().HopTicks(&stars[0], &stars[2], &carrier, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, cost.Ticks)
	assert.True(t, cost.Warp)
}

func TestHopTicks_SpecialistSpeed(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])
	carrier.Specialist = &galaxy.Specialist{ID: 1, Effects: []galaxy.SpecialistEffect{galaxy.LocalSpeed{Modifier: 2}}}

	cost, err := newCalculator().HopTicks(&stars[0], &stars[1], &carrier, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, cost.Ticks)
}

func TestHopTicks_LoiterCostsAtLeastOneTick(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])

	for delay := 0; delay < 5; delay++ {
		cost, err := newCalculator().HopTicks(&stars[1], &stars[1], &carrier, delay)

		require.NoError(t, err)
		assert.Equal(t, 1+delay, cost.Ticks)
		assert.True(t, cost.Loiter)
	}
}

func TestHopTicks_RejectsNegativeDelay(t *testing.T) {
	stars := helpers.LineStars()
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0])

	_, err := newCalculator().HopTicks(&stars[0], &stars[1], &carrier, -1)

	assert.True(t, shared.IsInvalidInput(err))
}

func TestHopTicks_SymmetricDistance(t *testing.T) {
	a := helpers.NewStar("A", 13, -7)
	b := helpers.NewStar("B", -42, 88)
	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &a)

	there, err := newCalculator().HopTicks(&a, &b, &carrier, 0)
	require.NoError(t, err)
	back, err := newCalculator().HopTicks(&b, &a, &carrier, 0)
	require.NoError(t, err)

	assert.Equal(t, there.Distance, back.Distance)
	assert.Equal(t, there.Ticks, back.Ticks)
}
