package helpers

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// Player ids used across fixtures
var (
	PlayerOne   = shared.MustNewPlayerID("player-1")
	PlayerTwo   = shared.MustNewPlayerID("player-2")
	PlayerThree = shared.MustNewPlayerID("player-3")
)

// ScenarioConstants is light year 50, speed 25 per tick, warp x3
func ScenarioConstants() galaxy.Constants {
	return galaxy.Constants{LightYear: 50, CarrierSpeed: 25, WarpSpeedMultiplier: 3}
}

// NewStar creates an unowned star without gate, wormhole or specialist
func NewStar(id string, x, y float64) galaxy.Star {
	return galaxy.Star{
		ID:       galaxy.StarID(id),
		Name:     id,
		Location: shared.Location{X: x, Y: y},
	}
}

// LineStars is A(0,0) B(100,0) C(200,0)
func LineStars() []galaxy.Star {
	return []galaxy.Star{
		NewStar("A", 0, 0),
		NewStar("B", 100, 0),
		NewStar("C", 200, 0),
	}
}

// NewCarrier creates a carrier orbiting a star at that star's location
func NewCarrier(id string, owner shared.PlayerID, orbiting *galaxy.Star, waypoints ...galaxy.Waypoint) galaxy.Carrier {
	return galaxy.Carrier{
		ID:                       galaxy.CarrierID(id),
		Name:                     id,
		Owner:                    owner,
		Location:                 orbiting.Location,
		Orbiting:                 orbiting.ID,
		Waypoints:                waypoints,
		EffectiveHyperspaceLevel: 1,
	}
}

// NewSnapshot builds a snapshot for tests, failing the test on error
func NewSnapshot(t testing.TB, stars []galaxy.Star, carriers []galaxy.Carrier, diplomacy galaxy.DiplomacyView) *galaxy.Snapshot {
	t.Helper()
	snapshot, err := galaxy.NewSnapshot("game-1", stars, carriers, diplomacy, ScenarioConstants())
	if err != nil {
		t.Fatalf("failed to build snapshot: %v", err)
	}
	return snapshot
}

// RandomGalaxy scatters n stars over a size x size square. Some stars get
// owners, warp gates and wormholes so that every cost rule is exercised.
func RandomGalaxy(rng *rand.Rand, n int, size float64) []galaxy.Star {
	owners := []shared.PlayerID{{}, PlayerOne, PlayerTwo}
	stars := make([]galaxy.Star, n)
	for i := range stars {
		stars[i] = NewStar(fmt.Sprintf("S%02d", i), rng.Float64()*size, rng.Float64()*size)
		stars[i].Owner = owners[rng.Intn(len(owners))]
		stars[i].WarpGate = rng.Intn(2) == 0
		if rng.Intn(4) == 0 {
			stars[i].Specialist = &galaxy.Specialist{ID: 1, Name: "scrambler", Effects: []galaxy.SpecialistEffect{galaxy.LockWarpGates{}}}
		}
	}
	if n >= 4 && rng.Intn(2) == 0 {
		a, b := rng.Intn(n), rng.Intn(n)
		if a != b {
			stars[a].WormholeTo = stars[b].ID
			stars[b].WormholeTo = stars[a].ID
		}
	}
	return stars
}

// StubSnapshotRepository serves snapshots from memory
type StubSnapshotRepository struct {
	Snapshots map[string]*galaxy.Snapshot
	Err       error
	Loads     int
}

// NewStubSnapshotRepository creates a repository holding the given snapshots
func NewStubSnapshotRepository(snapshots ...*galaxy.Snapshot) *StubSnapshotRepository {
	repo := &StubSnapshotRepository{Snapshots: make(map[string]*galaxy.Snapshot)}
	for _, snapshot := range snapshots {
		repo.Snapshots[snapshot.GameID()] = snapshot
	}
	return repo
}

// Load implements galaxy.SnapshotRepository
func (r *StubSnapshotRepository) Load(ctx context.Context, gameID string) (*galaxy.Snapshot, error) {
	r.Loads++
	if r.Err != nil {
		return nil, r.Err
	}
	snapshot, ok := r.Snapshots[gameID]
	if !ok {
		return nil, shared.NewNotFoundError("game", gameID)
	}
	return snapshot, nil
}
