package shared

// PlayerID is a value object representing a player's unique identifier.
// The zero value means "no player" and is used for unowned stars.
type PlayerID struct {
	value string
}

// NewPlayerID creates a new PlayerID value object
func NewPlayerID(id string) (PlayerID, error) {
	if id == "" {
		return PlayerID{}, NewValidationError("player_id", "cannot be empty")
	}
	return PlayerID{value: id}, nil
}

// MustNewPlayerID creates a new PlayerID value object, panicking if invalid
// Use this only when you're certain the ID is valid (e.g., from database)
func MustNewPlayerID(id string) PlayerID {
	playerID, err := NewPlayerID(id)
	if err != nil {
		panic(err)
	}
	return playerID
}

// PlayerIDOrZero returns the PlayerID for id, or the zero PlayerID when id is empty
func PlayerIDOrZero(id string) PlayerID {
	return PlayerID{value: id}
}

// Value returns the string value of the PlayerID
func (p PlayerID) Value() string {
	return p.value
}

// String returns a string representation of the PlayerID
func (p PlayerID) String() string {
	if p.value == "" {
		return "<none>"
	}
	return p.value
}

// Equals checks if two PlayerIDs are equal
func (p PlayerID) Equals(other PlayerID) bool {
	return p.value == other.value
}

// IsZero checks if the PlayerID is the zero value (no player)
func (p PlayerID) IsZero() bool {
	return p.value == ""
}
