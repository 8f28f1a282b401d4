package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/persistence"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

func richSnapshot(t *testing.T) *galaxy.Snapshot {
	scrambler := &galaxy.Specialist{ID: 7, Name: "Scrambler", Effects: []galaxy.SpecialistEffect{galaxy.LockWarpGates{}}}
	navigator := &galaxy.Specialist{ID: 3, Name: "Navigator", Effects: []galaxy.SpecialistEffect{
		galaxy.LocalSpeed{Modifier: 1.5}, galaxy.UnlockWarpGates{},
	}}

	stars := helpers.LineStars()
	stars[0].Owner = helpers.PlayerOne
	stars[0].WarpGate = true
	stars[0].WormholeTo = "C"
	stars[2].WormholeTo = "A"
	stars[2].Owner = helpers.PlayerTwo
	stars[2].Specialist = scrambler

	carrier := helpers.NewCarrier("C1", helpers.PlayerOne, &stars[0],
		galaxy.Waypoint{Source: "A", Destination: "B"},
		galaxy.Waypoint{Source: "B", Destination: "C", DelayTicks: 2})
	carrier.Specialist = navigator
	carrier.EffectiveHyperspaceLevel = 3

	drifting := helpers.NewCarrier("C2", helpers.PlayerTwo, &stars[1])
	drifting.Orbiting = ""
	drifting.Location = shared.Location{X: 150, Y: 10}

	constants := helpers.ScenarioConstants()
	constants.TickInterval = 90 * time.Second
	alliances := galaxy.NewAllianceTable(true).Ally(helpers.PlayerOne, helpers.PlayerTwo)

	snapshot, err := galaxy.NewSnapshot("game-1", stars, []galaxy.Carrier{carrier, drifting}, alliances, constants)
	require.NoError(t, err)
	return snapshot
}

func TestSnapshotRepository_SaveAndLoad(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSnapshotRepository(db)
	original := richSnapshot(t)

	// Act
	require.NoError(t, repo.Save(context.Background(), "Test galaxy", original))
	loaded, err := repo.Load(context.Background(), "game-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "game-1", loaded.GameID())
	assert.Equal(t, original.Constants(), loaded.Constants())
	assert.Equal(t, original.Stars(), loaded.Stars())
	assert.Equal(t, original.Carriers(), loaded.Carriers())
	assert.True(t, loaded.Diplomacy().IsAllied(helpers.PlayerOne, helpers.PlayerTwo))
}

func TestSnapshotRepository_SaveReplacesPreviousImport(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSnapshotRepository(db)
	require.NoError(t, repo.Save(context.Background(), "first", richSnapshot(t)))

	stars := helpers.LineStars()[:2]
	carrier := helpers.NewCarrier("C9", helpers.PlayerThree, &stars[0])
	replacement := helpers.NewSnapshot(t, stars, []galaxy.Carrier{carrier}, nil)
	require.NoError(t, repo.Save(context.Background(), "second", replacement))

	loaded, err := repo.Load(context.Background(), "game-1")
	require.NoError(t, err)
	assert.Len(t, loaded.Stars(), 2)
	require.Len(t, loaded.Carriers(), 1)
	assert.Equal(t, galaxy.CarrierID("C9"), loaded.Carriers()[0].ID)
	assert.Empty(t, loaded.Carriers()[0].Waypoints)
	assert.False(t, loaded.Diplomacy().IsAllied(helpers.PlayerOne, helpers.PlayerTwo))

	ids, err := repo.ListGameIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"game-1"}, ids)
}

func TestSnapshotRepository_LoadUnknownGame(t *testing.T) {
	repo := helpers.NewSeededSnapshotRepository(t, richSnapshot(t))

	_, err := repo.Load(context.Background(), "missing")

	assert.True(t, shared.IsNotFound(err))
}

func TestSnapshotRepository_RejectsConflictingSpecialists(t *testing.T) {
	stars := helpers.LineStars()
	stars[0].Specialist = &galaxy.Specialist{ID: 1, Name: "a", Effects: []galaxy.SpecialistEffect{galaxy.LockWarpGates{}}}
	stars[1].Specialist = &galaxy.Specialist{ID: 1, Name: "b", Effects: []galaxy.SpecialistEffect{galaxy.UnlockWarpGates{}}}
	snapshot := helpers.NewSnapshot(t, stars, nil, nil)
	repo := persistence.NewGormSnapshotRepository(helpers.NewTestDB(t))

	err := repo.Save(context.Background(), "conflict", snapshot)

	assert.True(t, shared.IsInvalidInput(err))
}
