package navigation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

func TestNeighborsOf_LineGalaxy(t *testing.T) {
	stars := helpers.LineStars()

	assert.Equal(t, []galaxy.StarID{"B"}, navigation.NeighborsOf(&stars[0], stars, 125))
	assert.Equal(t, []galaxy.StarID{"A", "C"}, navigation.NeighborsOf(&stars[1], stars, 125))
	assert.Equal(t, []galaxy.StarID{"B", "C"}, navigation.NeighborsOf(&stars[0], stars, 200))
}

func TestNeighborsOf_WormholeBeyondRange(t *testing.T) {
	stars := helpers.LineStars()
	stars[0].WormholeTo = "C"
	stars[2].WormholeTo = "A"

	assert.Equal(t, []galaxy.StarID{"B", "C"}, navigation.NeighborsOf(&stars[0], stars, 125))
	assert.Equal(t, []int{0, 1}, navigation.NeighborIndexes(&stars[2], stars, 125))
}

func TestNeighborsOf_OneSidedWormholeIgnored(t *testing.T) {
	stars := helpers.LineStars()
	stars[0].WormholeTo = "C"

	assert.Equal(t, []galaxy.StarID{"B"}, navigation.NeighborsOf(&stars[0], stars, 125))
}

func TestNeighborsOf_RangeBoundaryInclusive(t *testing.T) {
	stars := []galaxy.Star{helpers.NewStar("A", 0, 0), helpers.NewStar("B", 125, 0)}

	assert.Equal(t, []galaxy.StarID{"B"}, navigation.NeighborsOf(&stars[0], stars, 125))
}

func TestNeighborsOf_MonotonicInHyperspaceLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	constants := helpers.ScenarioConstants()

	for round := 0; round < 20; round++ {
		stars := helpers.RandomGalaxy(rng, 30, 600)

		for level := 1; level < 6; level++ {
			lower := constants.HyperspaceRange(level)
			higher := constants.HyperspaceRange(level + 1)

			for i := range stars {
				before := navigation.NeighborsOf(&stars[i], stars, lower)
				after := navigation.NeighborsOf(&stars[i], stars, higher)

				assert.Subset(t, after, before, "star %s level %d", stars[i].ID, level)
			}
		}
	}
}
