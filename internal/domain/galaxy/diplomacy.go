package galaxy

import (
	"sort"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// DiplomacyView answers alliance questions for warp eligibility
type DiplomacyView interface {
	IsAllied(a, b shared.PlayerID) bool
}

// AllianceTable is a symmetric set of allied player pairs.
// When formal alliances are disabled no pair is allied.
type AllianceTable struct {
	formalAlliances bool
	pairs           map[[2]string]struct{}
}

// NewAllianceTable creates an alliance table
func NewAllianceTable(formalAlliances bool) *AllianceTable {
	return &AllianceTable{
		formalAlliances: formalAlliances,
		pairs:           make(map[[2]string]struct{}),
	}
}

// Ally records a mutual alliance between a and b
func (t *AllianceTable) Ally(a, b shared.PlayerID) *AllianceTable {
	if a.IsZero() || b.IsZero() || a.Equals(b) {
		return t
	}
	t.pairs[pairKey(a, b)] = struct{}{}
	return t
}

// IsAllied implements DiplomacyView
func (t *AllianceTable) IsAllied(a, b shared.PlayerID) bool {
	if t == nil || !t.formalAlliances {
		return false
	}
	if a.IsZero() || b.IsZero() {
		return false
	}
	_, ok := t.pairs[pairKey(a, b)]
	return ok
}

// FormalAlliancesEnabled reports the game setting
func (t *AllianceTable) FormalAlliancesEnabled() bool {
	return t != nil && t.formalAlliances
}

// Pairs lists the allied pairs, each once, in a stable order
func (t *AllianceTable) Pairs() [][2]shared.PlayerID {
	if t == nil {
		return nil
	}
	keys := make([][2]string, 0, len(t.pairs))
	for key := range t.pairs {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	pairs := make([][2]shared.PlayerID, len(keys))
	for i, key := range keys {
		pairs[i] = [2]shared.PlayerID{shared.PlayerIDOrZero(key[0]), shared.PlayerIDOrZero(key[1])}
	}
	return pairs
}

func pairKey(a, b shared.PlayerID) [2]string {
	if a.Value() < b.Value() {
		return [2]string{a.Value(), b.Value()}
	}
	return [2]string{b.Value(), a.Value()}
}

// NoDiplomacy is a DiplomacyView where nobody is allied
type NoDiplomacy struct{}

// IsAllied always returns false
func (NoDiplomacy) IsAllied(shared.PlayerID, shared.PlayerID) bool { return false }
