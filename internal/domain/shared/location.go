package shared

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Location is an immutable 2-D coordinate in galaxy space
type Location struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
}

// NewLocation creates a location, rejecting non-finite coordinates
func NewLocation(x, y float64) (Location, error) {
	l := Location{X: x, Y: y}
	if err := l.Validate(); err != nil {
		return Location{}, err
	}
	return l, nil
}

// Validate checks that both coordinates are finite
func (l Location) Validate() error {
	if math.IsNaN(l.X) || math.IsInf(l.X, 0) {
		return NewInvalidInputError("location.x", fmt.Sprintf("non-finite coordinate %v", l.X))
	}
	if math.IsNaN(l.Y) || math.IsInf(l.Y, 0) {
		return NewInvalidInputError("location.y", fmt.Sprintf("non-finite coordinate %v", l.Y))
	}
	return nil
}

// Point converts the location to an orb point
func (l Location) Point() orb.Point {
	return orb.Point{l.X, l.Y}
}

// DistanceTo calculates Euclidean distance to another location
func (l Location) DistanceTo(other Location) float64 {
	return Distance(l, other)
}

func (l Location) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", l.X, l.Y)
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Location) float64 {
	return planar.Distance(a.Point(), b.Point())
}

// Angle returns the heading from a to b in radians
func Angle(a, b Location) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
