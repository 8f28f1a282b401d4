package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

// NewNeighborsCommand creates the neighbors command
func NewNeighborsCommand() *cobra.Command {
	var (
		carrierID string
		starID    string
	)

	cmd := &cobra.Command{
		Use:   "neighbors",
		Short: "List stars a carrier can reach in one hop",
		Long: `List the stars within the carrier's hyperspace range of a star, plus a
wormhole partner when the wormhole is mutual.

Examples:
  galaxy-router neighbors --snapshot galaxy.yaml --carrier C1
  galaxy-router neighbors --game g1 --carrier C1 --star VEGA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if carrierID == "" {
				return fmt.Errorf("--carrier flag is required")
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := withTimeout(s)
			defer cancel()

			resp, err := s.planner.ReachableStars(ctx, &domainRouting.ReachableRequest{
				GameID:    s.gameID,
				CarrierID: carrierID,
				StarID:    starID,
			})
			if err != nil {
				return fmt.Errorf("neighbor lookup failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "From %s (range %.1f): ", resp.StarID, resp.HyperspaceRange)
			if len(resp.Neighbors) == 0 {
				fmt.Fprintln(out, "no reachable stars")
				return nil
			}
			fmt.Fprintln(out, strings.Join(resp.Neighbors, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&carrierID, "carrier", "", "Carrier ID (required)")
	cmd.Flags().StringVar(&starID, "star", "", "Star ID (default: the star the carrier orbits)")

	return cmd
}
