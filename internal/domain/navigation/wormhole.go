package navigation

import "github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"

// IsWormholePair reports whether a and b link to each other. A one-sided
// link is not a shortcut.
func IsWormholePair(a, b *galaxy.Star) bool {
	if a.ID == b.ID {
		return false
	}
	return a.WormholeTo == b.ID && b.WormholeTo == a.ID
}

// WormholeTicks is the fixed cost of a wormhole hop
func WormholeTicks(delayTicks int) int {
	return 1 + delayTicks
}
