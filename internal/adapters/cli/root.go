package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	snapshotPath string
	gameID       string
	remote       bool
	verbose      bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galaxy-router",
		Short: "Galaxy router - carrier routes and travel times",
		Long: `Galaxy router plans carrier routes and estimates waypoint arrival times
over a galaxy snapshot.

Snapshots come from a YAML/JSON file (--snapshot), from the game-state database
(--game), or from a running routing daemon (--remote).

Examples:
  galaxy-router route --snapshot galaxy.yaml --carrier C1 --to SOL
  galaxy-router eta --game g1 --carrier C1
  galaxy-router neighbors --remote --game g1 --carrier C1
  galaxy-router import galaxy.yaml --name "Weekend game"
  galaxy-router config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/galaxy-routing)")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "",
		"Snapshot file or directory of <game-id> files")
	rootCmd.PersistentFlags().StringVar(&gameID, "game", "",
		"Game ID (database, directory snapshot or remote daemon)")
	rootCmd.PersistentFlags().BoolVar(&remote, "remote", false,
		"Query the routing daemon over gRPC instead of the local engine")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewRouteCommand())
	rootCmd.AddCommand(NewETACommand())
	rootCmd.AddCommand(NewNeighborsCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewHealthCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
