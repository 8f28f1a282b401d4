package snapshotfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

const sampleYAML = `
game_id: g1
constants:
  carrier_speed: 20
  tick_interval: 1h
formal_alliances: true
alliances:
  - [player-1, player-2]
specialists:
  - id: 7
    name: Navigator
    effects:
      - kind: local_speed
        value: 2
  - id: 9
    name: Scrambler
    effects:
      - kind: lock_warp_gates
stars:
  - {id: A, name: Alpha, x: 0, y: 0, owner: player-1, warp_gate: true}
  - {id: B, name: Beta, x: 100, y: 0, wormhole_to: C, specialist: 9}
  - {id: C, name: Gamma, x: 200, y: 0, wormhole_to: B}
carriers:
  - id: C1
    name: First
    owner: player-1
    x: 0
    y: 0
    orbiting: A
    hyperspace_level: 2
    specialist: 7
    waypoints:
      - {source: A, destination: B, delay: 1}
      - {source: B, destination: C}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestReadFile_ParsesDocument(t *testing.T) {
	// Arrange
	path := writeFile(t, t.TempDir(), "g1.yaml", sampleYAML)

	// Act
	snapshot, err := ReadFile(path, galaxy.DefaultConstants())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "g1", snapshot.GameID())

	constants := snapshot.Constants()
	assert.Equal(t, 50.0, constants.LightYear, "light year falls back to defaults")
	assert.Equal(t, 20.0, constants.CarrierSpeed)
	assert.Equal(t, time.Hour, constants.TickInterval)

	b, err := snapshot.Star("B")
	require.NoError(t, err)
	assert.Equal(t, galaxy.StarID("C"), b.WormholeTo)
	require.NotNil(t, b.Specialist)
	assert.True(t, b.Specialist.LocksWarpGates())

	a, err := snapshot.Star("A")
	require.NoError(t, err)
	assert.True(t, a.WarpGate)
	assert.True(t, a.IsOwnedBy(helpers.PlayerOne))

	carrier, err := snapshot.Carrier("C1")
	require.NoError(t, err)
	assert.Equal(t, 2, carrier.EffectiveHyperspaceLevel)
	assert.Equal(t, 2.0, carrier.Specialist.SpeedModifier())
	assert.Equal(t, []galaxy.Waypoint{
		{Source: "A", Destination: "B", DelayTicks: 1},
		{Source: "B", Destination: "C"},
	}, carrier.Waypoints)

	assert.True(t, snapshot.Diplomacy().IsAllied(helpers.PlayerOne, helpers.PlayerTwo))
}

func TestReadFile_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"undeclared specialist", "game_id: g\nstars:\n  - {id: A, x: 0, y: 0, specialist: 4}\n"},
		{"unknown effect", "game_id: g\nspecialists:\n  - {id: 1, effects: [{kind: teleport}]}\n"},
		{"half alliance", "game_id: g\nalliances:\n  - [player-1]\n"},
		{"duplicate star", "game_id: g\nstars:\n  - {id: A, x: 0, y: 0}\n  - {id: A, x: 1, y: 1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			path := writeFile(t, t.TempDir(), "bad.yaml", tt.body)

			// Act
			_, err := ReadFile(path, galaxy.DefaultConstants())

			// Assert
			require.Error(t, err)
			assert.True(t, shared.IsInvalidInput(err), "got %v", err)
		})
	}
}

func TestRepository_SingleFile(t *testing.T) {
	// Arrange
	path := writeFile(t, t.TempDir(), "galaxy.yaml", sampleYAML)
	repo := NewRepository(path, galaxy.DefaultConstants())
	ctx := context.Background()

	// Act
	byID, errByID := repo.Load(ctx, "g1")
	anyID, errAny := repo.Load(ctx, "")
	_, errOther := repo.Load(ctx, "g2")

	// Assert
	require.NoError(t, errByID)
	require.NoError(t, errAny)
	assert.Equal(t, "g1", byID.GameID())
	assert.Equal(t, "g1", anyID.GameID())
	assert.True(t, shared.IsNotFound(errOther))
}

func TestRepository_Directory(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeFile(t, dir, "g1.yaml", sampleYAML)
	writeFile(t, dir, "g2.json", `{"game_id": "g2", "stars": [{"id": "X", "x": 1, "y": 2}]}`)
	repo := NewRepository(dir, galaxy.DefaultConstants())
	ctx := context.Background()

	// Act
	g1, err1 := repo.Load(ctx, "g1")
	g2, err2 := repo.Load(ctx, "g2")
	_, errMissing := repo.Load(ctx, "g3")
	_, errTraversal := repo.Load(ctx, "../g1")

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Len(t, g1.Stars(), 3)
	assert.Len(t, g2.Stars(), 1)
	assert.True(t, shared.IsNotFound(errMissing))
	assert.True(t, shared.IsInvalidInput(errTraversal))
}

func TestRepository_MissingPath(t *testing.T) {
	// Arrange
	repo := NewRepository(filepath.Join(t.TempDir(), "nope.yaml"), galaxy.DefaultConstants())

	// Act
	_, err := repo.Load(context.Background(), "g1")

	// Assert
	assert.True(t, shared.IsNotFound(err))
}

func TestWriteFile_RoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			// Arrange
			source, err := ReadFile(writeFile(t, t.TempDir(), "in.yaml", sampleYAML), galaxy.DefaultConstants())
			require.NoError(t, err)
			out := filepath.Join(t.TempDir(), "out"+ext)

			// Act
			require.NoError(t, WriteFile(out, source))
			loaded, err := ReadFile(out, galaxy.Constants{})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, source.GameID(), loaded.GameID())
			assert.Equal(t, source.Constants(), loaded.Constants())
			assert.Equal(t, source.Stars(), loaded.Stars())
			assert.Equal(t, source.Carriers(), loaded.Carriers())
			assert.True(t, loaded.Diplomacy().IsAllied(helpers.PlayerTwo, helpers.PlayerOne))
		})
	}
}
