package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

// NewRouteCommand creates the route command
func NewRouteCommand() *cobra.Command {
	var (
		carrierID   string
		source      string
		destination string
		mode        string
		icons       bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan the fastest route for a carrier",
		Long: `Plan the route with the fewest ticks from a star to a destination star.

The source defaults to the star the carrier orbits. Hops respect the carrier's
hyperspace range, warp gates, wormholes and specialists.

Examples:
  galaxy-router route --snapshot galaxy.yaml --carrier C1 --to SOL
  galaxy-router route --game g1 --carrier C1 --from VEGA --to SOL --mode astar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags
			if carrierID == "" {
				return fmt.Errorf("--carrier flag is required")
			}
			if destination == "" {
				return fmt.Errorf("--to flag is required")
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := withTimeout(s)
			defer cancel()

			resp, err := s.planner.PlanRoute(ctx, &domainRouting.RouteRequest{
				GameID:            s.gameID,
				CarrierID:         carrierID,
				SourceStarID:      source,
				DestinationStarID: destination,
				Mode:              mode,
			})
			if err != nil {
				return fmt.Errorf("route planning failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if !resp.Reachable {
				fmt.Fprintf(out, "No route from %s to %s for carrier %s\n", sourceLabel(source), destination, carrierID)
				return nil
			}

			fmt.Fprintf(out, "Route %s (%s)\n", resp.RouteID, resp.Mode)
			formatter := NewRouteFormatter()
			if icons {
				formatter = formatter.WithEmojis()
			}
			fmt.Fprint(out, formatter.FormatRoute(resp))
			fmt.Fprintf(out, "Total: %d ticks, %.1f distance, %d stars expanded\n",
				resp.TotalTicks, resp.TotalDistance, resp.NodesExpanded)
			return nil
		},
	}

	// Command-specific flags
	cmd.Flags().StringVar(&carrierID, "carrier", "", "Carrier ID (required)")
	cmd.Flags().StringVar(&source, "from", "", "Source star ID (default: the star the carrier orbits)")
	cmd.Flags().StringVar(&destination, "to", "", "Destination star ID (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Search mode: dijkstra or astar (default from config)")
	cmd.Flags().BoolVar(&icons, "icons", false, "Mark hop kinds with icons")

	return cmd
}

func sourceLabel(source string) string {
	if source == "" {
		return "its current star"
	}
	return source
}
