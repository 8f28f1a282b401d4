package galaxy

import "fmt"

// SpecialistEffect is one capability a specialist grants. The set of
// implementations is closed: LocalSpeed, UnlockWarpGates and LockWarpGates.
type SpecialistEffect interface {
	isSpecialistEffect()
	String() string
}

// LocalSpeed multiplies the tick distance of the carrier it is assigned to
type LocalSpeed struct {
	Modifier float64
}

// UnlockWarpGates lets a carrier use any warp gate pair, scramblers included
type UnlockWarpGates struct{}

// LockWarpGates scrambles a star's warp gate for carriers not allied with its owner
type LockWarpGates struct{}

func (LocalSpeed) isSpecialistEffect()      {}
func (UnlockWarpGates) isSpecialistEffect() {}
func (LockWarpGates) isSpecialistEffect()   {}

func (e LocalSpeed) String() string    { return fmt.Sprintf("local_speed(x%.2f)", e.Modifier) }
func (UnlockWarpGates) String() string { return "unlock_warp_gates" }
func (LockWarpGates) String() string   { return "lock_warp_gates" }

// Specialist is a carrier or star specialist with its effects
type Specialist struct {
	ID      int
	Name    string
	Effects []SpecialistEffect
}

// SpeedModifier returns the product of all LocalSpeed effects, 1.0 when none.
// Safe to call on a nil specialist.
func (s *Specialist) SpeedModifier() float64 {
	modifier := 1.0
	if s == nil {
		return modifier
	}
	for _, effect := range s.Effects {
		switch e := effect.(type) {
		case LocalSpeed:
			modifier *= e.Modifier
		case UnlockWarpGates, LockWarpGates:
		}
	}
	return modifier
}

// UnlocksWarpGates reports whether the specialist carries UnlockWarpGates
func (s *Specialist) UnlocksWarpGates() bool {
	return s.hasEffect(func(effect SpecialistEffect) bool {
		_, ok := effect.(UnlockWarpGates)
		return ok
	})
}

// LocksWarpGates reports whether the specialist carries LockWarpGates
func (s *Specialist) LocksWarpGates() bool {
	return s.hasEffect(func(effect SpecialistEffect) bool {
		_, ok := effect.(LockWarpGates)
		return ok
	})
}

func (s *Specialist) hasEffect(match func(SpecialistEffect) bool) bool {
	if s == nil {
		return false
	}
	for _, effect := range s.Effects {
		if match(effect) {
			return true
		}
	}
	return false
}

// Validate rejects non-positive or non-finite speed modifiers
func (s *Specialist) Validate() error {
	if s == nil {
		return nil
	}
	for _, effect := range s.Effects {
		switch e := effect.(type) {
		case LocalSpeed:
			if !isPositiveFinite(e.Modifier) {
				return invalidf("specialist.local_speed", "specialist %d has modifier %v", s.ID, e.Modifier)
			}
		case UnlockWarpGates, LockWarpGates:
		case nil:
			return invalidf("specialist.effects", "specialist %d has a nil effect", s.ID)
		}
	}
	return nil
}

// ParseSpecialistEffect builds an effect from its persisted kind and value
func ParseSpecialistEffect(kind string, value float64) (SpecialistEffect, error) {
	switch kind {
	case "local_speed":
		return LocalSpeed{Modifier: value}, nil
	case "unlock_warp_gates":
		return UnlockWarpGates{}, nil
	case "lock_warp_gates":
		return LockWarpGates{}, nil
	default:
		return nil, invalidf("specialist.effect", "unknown kind %q", kind)
	}
}

// EffectKind returns the persisted kind and value of an effect
func EffectKind(effect SpecialistEffect) (string, float64) {
	switch e := effect.(type) {
	case LocalSpeed:
		return "local_speed", e.Modifier
	case UnlockWarpGates:
		return "unlock_warp_gates", 0
	case LockWarpGates:
		return "lock_warp_gates", 0
	default:
		return "", 0
	}
}
