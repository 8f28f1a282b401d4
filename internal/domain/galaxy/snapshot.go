package galaxy

import (
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// Snapshot is a read-only view of one game's galaxy: stars, carriers,
// diplomacy and constants. Stars and carriers are held in arenas and
// referenced by index; nothing in the engine mutates them.
type Snapshot struct {
	gameID    string
	stars     []Star
	carriers  []Carrier
	diplomacy DiplomacyView
	constants Constants

	starIndex    map[StarID]int
	carrierIndex map[CarrierID]int
}

// NewSnapshot builds a snapshot and validates it. The slices are copied.
func NewSnapshot(
	gameID string,
	stars []Star,
	carriers []Carrier,
	diplomacy DiplomacyView,
	constants Constants,
) (*Snapshot, error) {
	if diplomacy == nil {
		diplomacy = NoDiplomacy{}
	}

	s := &Snapshot{
		gameID:       gameID,
		stars:        append([]Star(nil), stars...),
		carriers:     append([]Carrier(nil), carriers...),
		diplomacy:    diplomacy,
		constants:    constants,
		starIndex:    make(map[StarID]int, len(stars)),
		carrierIndex: make(map[CarrierID]int, len(carriers)),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Snapshot) validate() error {
	if err := s.constants.Validate(); err != nil {
		return err
	}

	for i := range s.stars {
		star := &s.stars[i]
		if err := star.Validate(); err != nil {
			return err
		}
		if _, exists := s.starIndex[star.ID]; exists {
			return shared.NewInvalidInputError("star.id", fmt.Sprintf("duplicate star %s", star.ID))
		}
		s.starIndex[star.ID] = i
	}

	for i := range s.carriers {
		carrier := &s.carriers[i]
		if err := carrier.Validate(); err != nil {
			return err
		}
		if _, exists := s.carrierIndex[carrier.ID]; exists {
			return shared.NewInvalidInputError("carrier.id", fmt.Sprintf("duplicate carrier %s", carrier.ID))
		}
		s.carrierIndex[carrier.ID] = i
	}

	return nil
}

// GameID returns the game the snapshot was taken from
func (s *Snapshot) GameID() string {
	return s.gameID
}

// Stars returns the star arena. Callers must not modify it.
func (s *Snapshot) Stars() []Star {
	return s.stars
}

// Carriers returns the carrier arena. Callers must not modify it.
func (s *Snapshot) Carriers() []Carrier {
	return s.carriers
}

// Diplomacy returns the alliance view
func (s *Snapshot) Diplomacy() DiplomacyView {
	return s.diplomacy
}

// Constants returns the galaxy travel constants
func (s *Snapshot) Constants() Constants {
	return s.constants
}

// Star looks up a star by id
func (s *Snapshot) Star(id StarID) (*Star, error) {
	i, ok := s.starIndex[id]
	if !ok {
		return nil, shared.NewNotFoundError("star", string(id))
	}
	return &s.stars[i], nil
}

// Carrier looks up a carrier by id
func (s *Snapshot) Carrier(id CarrierID) (*Carrier, error) {
	i, ok := s.carrierIndex[id]
	if !ok {
		return nil, shared.NewNotFoundError("carrier", string(id))
	}
	return &s.carriers[i], nil
}

// HyperspaceRange returns the hop range for the carrier's hyperspace level
func (s *Snapshot) HyperspaceRange(carrier *Carrier) float64 {
	return s.constants.HyperspaceRange(carrier.EffectiveHyperspaceLevel)
}
