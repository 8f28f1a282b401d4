package navigation_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

// ticksBySubtraction advances one tick at a time until the distance is covered
func ticksBySubtraction(distance, tickDistance float64) int {
	ticks := 0
	remaining := distance
	for remaining > 0 {
		remaining -= tickDistance
		ticks++
	}
	if ticks < 1 {
		return 1
	}
	return ticks
}

func TestTicksForDistance(t *testing.T) {
	tests := []struct {
		name         string
		distance     float64
		tickDistance float64
		expected     int
	}{
		{"exact multiple", 100, 25, 4},
		{"partial tick rounds up", 101, 25, 5},
		{"zero distance floors to one", 0, 25, 1},
		{"shorter than a tick", 3, 25, 1},
		{"warp speed", 100, 75, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks, err := navigation.TicksForDistance(tt.distance, tt.tickDistance)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ticks)
		})
	}
}

func TestTicksForDistance_RejectsInvalidInput(t *testing.T) {
	inputs := [][2]float64{
		{-1, 25},
		{math.NaN(), 25},
		{math.Inf(1), 25},
		{100, 0},
		{100, -5},
		{100, math.NaN()},
		{1e300, 1e-300},
	}

	for _, in := range inputs {
		_, err := navigation.TicksForDistance(in[0], in[1])
		assert.True(t, shared.IsInvalidInput(err), "distance=%v tick=%v", in[0], in[1])
	}
}

func TestTicksForDistance_MatchesSubtractionLoopOnExactInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tickDistances := []float64{0.5, 12.5, 25, 37.5, 75, 100, 112.5}

	for i := 0; i < 2000; i++ {
		// Eighths are exact in binary, so repeated subtraction accumulates no error
		distance := float64(rng.Intn(8000)) / 8
		tickDistance := tickDistances[rng.Intn(len(tickDistances))]

		ticks, err := navigation.TicksForDistance(distance, tickDistance)

		require.NoError(t, err)
		require.Equal(t, ticksBySubtraction(distance, tickDistance), ticks,
			"distance=%v tick=%v", distance, tickDistance)
	}
}

func TestTicksForDistance_InexactTickDistances(t *testing.T) {
	// A LocalSpeed 1.1 specialist makes the tick distance 27.500000000000004.
	// Seven ticks cover seven tick lengths; the subtraction loop drifts and
	// counts an eighth.
	modifier := 1.1
	require.Equal(t, 27.500000000000004, 25*modifier)
	tick := 27.500000000000004
	distance := 192.50000000000003

	ticks, err := navigation.TicksForDistance(distance, tick)

	require.NoError(t, err)
	assert.Equal(t, 7, ticks)
	assert.Equal(t, 8, ticksBySubtraction(distance, tick))
}

func TestTicksForDistance_IsMinimalForInexactTickDistances(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	modifiers := []float64{1.1, 1.3, 0.9, 3.3}
	const tolerance = 1e-9

	for i := 0; i < 5000; i++ {
		tick := 25 * modifiers[rng.Intn(len(modifiers))]
		distance := float64(1+rng.Intn(40)) * tick
		if rng.Intn(2) == 0 {
			distance += rng.Float64() * tick
		}

		ticks, err := navigation.TicksForDistance(distance, tick)
		require.NoError(t, err)

		// ticks tick lengths reach the distance, one fewer does not
		covered := float64(ticks) * tick
		short := float64(ticks-1) * tick
		require.GreaterOrEqual(t, covered, distance*(1-tolerance), "distance=%v tick=%v", distance, tick)
		require.Less(t, short, distance*(1+tolerance), "distance=%v tick=%v", distance, tick)
	}
}

func TestSpeedModel_EffectiveTickDistance(t *testing.T) {
	model := navigation.NewSpeedModel(helpers.ScenarioConstants())
	fast := &galaxy.Specialist{ID: 1, Effects: []galaxy.SpecialistEffect{galaxy.LocalSpeed{Modifier: 1.5}}}

	assert.Equal(t, 25.0, model.EffectiveTickDistance(false, nil))
	assert.Equal(t, 75.0, model.EffectiveTickDistance(true, nil))
	assert.Equal(t, 37.5, model.EffectiveTickDistance(false, fast))
	assert.Equal(t, 112.5, model.EffectiveTickDistance(true, fast))
	assert.Equal(t, 112.5, model.MaxTickDistance(fast))
}
