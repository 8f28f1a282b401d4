package shared_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

func TestDistance_PythagoreanTriple(t *testing.T) {
	a := shared.Location{X: 0, Y: 0}
	b := shared.Location{X: 3, Y: 4}

	assert.InDelta(t, 5.0, shared.Distance(a, b), 1e-9)
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
}

func TestDistance_IsSymmetric(t *testing.T) {
	points := []shared.Location{
		{X: 0, Y: 0},
		{X: -12.5, Y: 40},
		{X: 100, Y: 0},
		{X: 33.3, Y: -71.9},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, shared.Distance(a, b), shared.Distance(b, a), "dist(%v,%v)", a, b)
		}
	}
}

func TestAngle(t *testing.T) {
	origin := shared.Location{}

	assert.InDelta(t, 0.0, shared.Angle(origin, shared.Location{X: 10, Y: 0}), 1e-9)
	assert.InDelta(t, math.Pi/2, shared.Angle(origin, shared.Location{X: 0, Y: 10}), 1e-9)
	assert.InDelta(t, math.Pi, shared.Angle(origin, shared.Location{X: -10, Y: 0}), 1e-9)
}

func TestNewLocation_RejectsNonFiniteCoordinates(t *testing.T) {
	tests := []struct {
		x, y float64
	}{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v,%v", tt.x, tt.y), func(t *testing.T) {
			_, err := shared.NewLocation(tt.x, tt.y)

			require.Error(t, err)
			assert.True(t, shared.IsInvalidInput(err))
		})
	}

	loc, err := shared.NewLocation(1.5, -2)
	require.NoError(t, err)
	assert.Equal(t, shared.Location{X: 1.5, Y: -2}, loc)
}

func TestErrorKinds_MatchThroughWrapping(t *testing.T) {
	notFound := fmt.Errorf("loading route: %w", shared.NewNotFoundError("star", "S1"))
	invalid := fmt.Errorf("loading route: %w", shared.NewInvalidInputError("hyperspace_range", "must be positive"))

	assert.True(t, errors.Is(notFound, shared.ErrNotFound))
	assert.False(t, errors.Is(notFound, shared.ErrInvalidInput))
	assert.True(t, shared.IsInvalidInput(invalid))
	assert.False(t, shared.IsNotFound(invalid))
	assert.Equal(t, "star not found: S1", errors.Unwrap(notFound).Error())
}
