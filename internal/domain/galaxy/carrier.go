package galaxy

import (
	"fmt"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// CarrierID identifies a carrier within a game
type CarrierID string

// Waypoint is one committed hop in a carrier's travel plan
type Waypoint struct {
	Source      StarID
	Destination StarID
	DelayTicks  int
}

// IsLoiter reports whether the waypoint stays at its source star
func (w Waypoint) IsLoiter() bool {
	return w.Source == w.Destination
}

func (w Waypoint) String() string {
	if w.DelayTicks > 0 {
		return fmt.Sprintf("%s → %s (+%d)", w.Source, w.Destination, w.DelayTicks)
	}
	return fmt.Sprintf("%s → %s", w.Source, w.Destination)
}

// Carrier is the traveling unit
type Carrier struct {
	ID                       CarrierID
	Name                     string
	Owner                    shared.PlayerID
	Location                 shared.Location
	Orbiting                 StarID
	Waypoints                []Waypoint
	Specialist               *Specialist
	EffectiveHyperspaceLevel int
}

// IsInTransit reports whether the carrier is between stars
func (c *Carrier) IsInTransit() bool {
	return c.Orbiting == ""
}

// Validate checks id, owner, coordinates, waypoints and specialist
func (c *Carrier) Validate() error {
	if c.ID == "" {
		return shared.NewInvalidInputError("carrier.id", "cannot be empty")
	}
	if c.Owner.IsZero() {
		return shared.NewInvalidInputError("carrier.owner", fmt.Sprintf("carrier %s has no owner", c.ID))
	}
	if err := c.Location.Validate(); err != nil {
		return fmt.Errorf("carrier %s: %w", c.ID, err)
	}
	for i, wp := range c.Waypoints {
		if wp.DelayTicks < 0 {
			return invalidf("waypoint.delay_ticks", "carrier %s waypoint %d has negative delay %d", c.ID, i, wp.DelayTicks)
		}
	}
	if err := c.Specialist.Validate(); err != nil {
		return fmt.Errorf("carrier %s: %w", c.ID, err)
	}
	return nil
}

func (c *Carrier) String() string {
	return fmt.Sprintf("Carrier(%s, owner=%s, waypoints=%d)", c.ID, c.Owner, len(c.Waypoints))
}
