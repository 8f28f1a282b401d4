package navigation

import (
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// NeighborsOf returns every other star reachable from star in one hop:
// within hyperspace range, or through a mutual wormhole
func NeighborsOf(star *galaxy.Star, stars []galaxy.Star, hyperspaceRange float64) []galaxy.StarID {
	indexes := NeighborIndexes(star, stars, hyperspaceRange)
	ids := make([]galaxy.StarID, len(indexes))
	for i, idx := range indexes {
		ids[i] = stars[idx].ID
	}
	return ids
}

// NeighborIndexes is NeighborsOf returning positions in stars, in order
func NeighborIndexes(star *galaxy.Star, stars []galaxy.Star, hyperspaceRange float64) []int {
	var neighbors []int
	for i := range stars {
		other := &stars[i]
		if other.ID == star.ID {
			continue
		}
		if shared.Distance(star.Location, other.Location) <= hyperspaceRange || IsWormholePair(star, other) {
			neighbors = append(neighbors, i)
		}
	}
	return neighbors
}
