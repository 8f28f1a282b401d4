package galaxy

import (
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// StarID identifies a star within a game
type StarID string

// Star is a node in the navigation graph
type Star struct {
	ID         StarID
	Name       string
	Location   shared.Location
	Owner      shared.PlayerID
	WarpGate   bool
	WormholeTo StarID
	Specialist *Specialist
}

// IsOwned reports whether any player owns the star
func (s *Star) IsOwned() bool {
	return !s.Owner.IsZero()
}

// IsOwnedBy reports whether the given player owns the star
func (s *Star) IsOwnedBy(player shared.PlayerID) bool {
	return s.IsOwned() && s.Owner.Equals(player)
}

// HasWormhole reports whether the star declares a wormhole link.
// The link is only usable when the other end links back.
func (s *Star) HasWormhole() bool {
	return s.WormholeTo != ""
}

// DistanceTo calculates Euclidean distance to another star
func (s *Star) DistanceTo(other *Star) float64 {
	return shared.Distance(s.Location, other.Location)
}

// Validate checks id, coordinates and specialist
func (s *Star) Validate() error {
	if s.ID == "" {
		return shared.NewInvalidInputError("star.id", "cannot be empty")
	}
	if err := s.Location.Validate(); err != nil {
		return fmt.Errorf("star %s: %w", s.ID, err)
	}
	if err := s.Specialist.Validate(); err != nil {
		return fmt.Errorf("star %s: %w", s.ID, err)
	}
	return nil
}

func (s *Star) String() string {
	return fmt.Sprintf("Star(%s)", s.ID)
}
