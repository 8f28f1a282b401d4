package galaxy

import "context"

// SnapshotRepository loads read-only galaxy snapshots from the game-state store
type SnapshotRepository interface {
	Load(ctx context.Context, gameID string) (*Snapshot, error)
}
