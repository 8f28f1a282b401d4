package snapshotfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

var extensions = []string{".yaml", ".yml", ".json", ".toml"}

// Repository loads galaxy snapshots from files. The path is either a single
// snapshot file or a directory holding one <game_id>.<ext> file per game.
type Repository struct {
	path      string
	constants galaxy.Constants
}

// NewRepository creates a file-backed snapshot repository. Constants fill in
// values a document leaves out.
func NewRepository(path string, constants galaxy.Constants) *Repository {
	return &Repository{path: path, constants: constants}
}

// Load reads the snapshot for gameID. A single-file repository serves its
// document for an empty gameID or the id it declares.
func (r *Repository) Load(ctx context.Context, gameID string) (*galaxy.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, shared.NewNotFoundError("snapshot file", r.path)
		}
		return nil, fmt.Errorf("failed to stat snapshot path: %w", err)
	}

	if info.IsDir() {
		file, err := r.fileFor(gameID)
		if err != nil {
			return nil, err
		}
		return ReadFile(file, r.constants)
	}

	snapshot, err := ReadFile(r.path, r.constants)
	if err != nil {
		return nil, err
	}
	if gameID != "" && snapshot.GameID() != gameID {
		return nil, shared.NewNotFoundError("game", gameID)
	}
	return snapshot, nil
}

func (r *Repository) fileFor(gameID string) (string, error) {
	if gameID == "" || filepath.Base(gameID) != gameID {
		return "", shared.NewInvalidInputError("game_id", "a plain game id is required for a snapshot directory")
	}
	for _, ext := range extensions {
		candidate := filepath.Join(r.path, gameID+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", shared.NewNotFoundError("game", gameID)
}

// ReadFile parses one snapshot document; the format follows the extension
func ReadFile(path string, defaults galaxy.Constants) (*galaxy.Snapshot, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}

	snapshot, err := doc.toSnapshot(defaults)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

// WriteFile stores a snapshot; the format follows the extension
func WriteFile(path string, snapshot *galaxy.Snapshot) error {
	v := viper.New()
	for key, value := range fromSnapshot(snapshot) {
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}
