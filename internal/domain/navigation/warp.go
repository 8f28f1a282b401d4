package navigation

import "github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"

// CanWarp decides whether a carrier may travel at warp speed from source to
// dest. The answer depends on the carrier's owner and alliances, so it is not
// symmetric in general and must be evaluated per hop.
func CanWarp(source, dest *galaxy.Star, carrier *galaxy.Carrier, diplomacy galaxy.DiplomacyView) bool {
	if !source.WarpGate || !dest.WarpGate {
		return false
	}
	if !source.IsOwned() || !dest.IsOwned() {
		return false
	}

	sourceAllied := isFriendly(source, carrier, diplomacy)
	destAllied := isFriendly(dest, carrier, diplomacy)

	if sourceAllied && destAllied {
		return true
	}

	if carrier.Specialist.UnlocksWarpGates() {
		return true
	}

	if !sourceAllied && source.Specialist.LocksWarpGates() {
		return false
	}
	if !destAllied && dest.Specialist.LocksWarpGates() {
		return false
	}

	return true
}

func isFriendly(star *galaxy.Star, carrier *galaxy.Carrier, diplomacy galaxy.DiplomacyView) bool {
	if star.IsOwnedBy(carrier.Owner) {
		return true
	}
	if diplomacy == nil {
		return false
	}
	return diplomacy.IsAllied(carrier.Owner, star.Owner)
}
