package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/persistence"
	"github.com/andrescamacho/galaxy-routing-go/internal/adapters/snapshotfile"
	"github.com/andrescamacho/galaxy-routing-go/internal/infrastructure/database"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <snapshot-file>",
		Short: "Import a snapshot file into the game-state database",
		Long: `Read a YAML/JSON snapshot file and store it in the database under its
game_id, replacing any earlier import of the same game.

Example:
  galaxy-router import galaxy.yaml --name "Weekend game"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			snapshot, err := snapshotfile.ReadFile(args[0], cfg.Galaxy.Constants())
			if err != nil {
				return err
			}
			if snapshot.GameID() == "" {
				return fmt.Errorf("snapshot %s has no game_id", args[0])
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if name == "" {
				name = snapshot.GameID()
			}
			repo := persistence.NewGormSnapshotRepository(db)
			if err := repo.Save(context.Background(), name, snapshot); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported game %s: %d stars, %d carriers\n",
				snapshot.GameID(), len(snapshot.Stars()), len(snapshot.Carriers()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name of the game (default: game_id)")

	return cmd
}

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "export <snapshot-file>",
		Short: "Export a game from the database to a snapshot file",
		Long: `Write a stored game to a snapshot file; the format follows the file
extension (.yaml, .yml, .json, .toml).

Examples:
  galaxy-router export --game g1 g1.yaml
  galaxy-router export --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			repo := persistence.NewGormSnapshotRepository(db)
			out := cmd.OutOrStdout()

			if list {
				ids, err := repo.ListGameIDs(context.Background())
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			if gameID == "" {
				return fmt.Errorf("--game flag is required")
			}
			if len(args) != 1 {
				return fmt.Errorf("an output file is required")
			}

			snapshot, err := repo.Load(context.Background(), gameID)
			if err != nil {
				return err
			}
			if err := snapshotfile.WriteFile(args[0], snapshot); err != nil {
				return err
			}

			fmt.Fprintf(out, "✓ Exported game %s to %s\n", gameID, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List stored game IDs instead of exporting")

	return cmd
}
