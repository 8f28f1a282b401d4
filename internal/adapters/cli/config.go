package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/galaxy-routing-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage galaxy router configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (GR_* prefix, DATABASE_URL)
2. Config file (config.yaml)
3. Default values

User preferences (default game, default snapshot) are stored in
~/.galaxy-router/config.json

Examples:
  galaxy-router config show
  galaxy-router config set-game g1
  galaxy-router config set-snapshot ./galaxy.yaml
  galaxy-router config clear`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetGameCommand())
	cmd.AddCommand(newConfigSetSnapshotCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Fprintln(out, "Galaxy Router Configuration")
			fmt.Fprintln(out, "===========================")

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.GetConfigPath())
			fmt.Fprintf(out, "  Default Game:     %s\n", orNotSet(userCfg.DefaultGameID))
			fmt.Fprintf(out, "  Default Snapshot: %s\n", orNotSet(userCfg.DefaultSnapshot))

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}

			fmt.Fprintln(out, "\nGalaxy:")
			fmt.Fprintf(out, "  Light Year:       %g\n", cfg.Galaxy.LightYear)
			fmt.Fprintf(out, "  Carrier Speed:    %g\n", cfg.Galaxy.CarrierSpeed)
			fmt.Fprintf(out, "  Warp Multiplier:  %g\n", cfg.Galaxy.WarpSpeedMultiplier)
			fmt.Fprintf(out, "  Tick Interval:    %s\n", cfg.Galaxy.TickInterval)

			fmt.Fprintln(out, "\nRouting:")
			fmt.Fprintf(out, "  Mode:             %s\n", cfg.Routing.Mode)
			fmt.Fprintf(out, "  Request Timeout:  %s\n", cfg.Routing.RequestTimeout)
			fmt.Fprintf(out, "  Daemon Address:   %s\n", cfg.Routing.Address)

			fmt.Fprintln(out, "\nDaemon:")
			fmt.Fprintf(out, "  Listen Address:   %s\n", cfg.Daemon.Address)
			fmt.Fprintf(out, "  PID File:         %s\n", cfg.Daemon.PIDFile)
			fmt.Fprintf(out, "  Rate Limit:       %g req/s (burst: %d)\n",
				cfg.Daemon.RateLimit.Requests, cfg.Daemon.RateLimit.Burst)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Endpoint:         %s%s\n", cfg.Metrics.Address(), cfg.Metrics.Path)
			fmt.Fprintf(out, "  Health:           %s%s\n", cfg.Metrics.Address(), cfg.Metrics.HealthPath)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)

			return nil
		},
	}
}

func newConfigSetGameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-game <game-id>",
		Short: "Set the default game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.SetDefaultGame(args[0]); err != nil {
				return fmt.Errorf("failed to save default game: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default game set to %s\n", args[0])
			return nil
		},
	}
}

func newConfigSetSnapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-snapshot <path>",
		Short: "Set the default snapshot file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.SetDefaultSnapshot(args[0]); err != nil {
				return fmt.Errorf("failed to save default snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default snapshot set to %s\n", args[0])
			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all user defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.ClearDefaults(); err != nil {
				return fmt.Errorf("failed to clear defaults: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ User defaults cleared")
			return nil
		},
	}
}

func orNotSet(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}
