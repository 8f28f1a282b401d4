package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/persistence"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/infrastructure/database"
)

// NewTestDB opens an in-memory SQLite snapshot store with the galaxy tables
// migrated. The connection is closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	require.NoError(t, err, "open in-memory snapshot store")
	t.Cleanup(func() { _ = database.Close(db) })

	return db
}

// NewSeededSnapshotRepository imports each snapshot into a fresh test store,
// named after its game id, and returns the repository reading from it
func NewSeededSnapshotRepository(t testing.TB, snapshots ...*galaxy.Snapshot) *persistence.GormSnapshotRepository {
	t.Helper()

	repo := persistence.NewGormSnapshotRepository(NewTestDB(t))
	for _, snapshot := range snapshots {
		require.NoError(t, repo.Save(context.Background(), snapshot.GameID(), snapshot), "import %s", snapshot.GameID())
	}
	return repo
}
