package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

// NewETACommand creates the eta command
func NewETACommand() *cobra.Command {
	var (
		carrierID string
		upto      int
	)

	cmd := &cobra.Command{
		Use:   "eta",
		Short: "Estimate arrival ticks along a carrier's waypoints",
		Long: `Estimate how many ticks each committed waypoint takes, including delays,
and the cumulative arrival time at every waypoint.

Examples:
  galaxy-router eta --snapshot galaxy.yaml --carrier C1
  galaxy-router eta --game g1 --carrier C1 --upto 2`,
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

			req := &domainRouting.ETARequest{GameID: s.gameID, CarrierID: carrierID}
			if cmd.Flags().Changed("upto") {
				req.UptoWaypoint = &upto
			}

			resp, err := s.planner.EstimateArrival(ctx, req)
			if err != nil {
				return fmt.Errorf("ETA estimation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Carrier %s\n", resp.CarrierID)
			if len(resp.PerWaypoint) == 0 {
				fmt.Fprintln(out, "  (no waypoints)")
			}
			for i := range resp.PerWaypoint {
				fmt.Fprintf(out, "  #%d  %3d ticks  (arrives after %d)\n", i, resp.PerWaypoint[i], resp.Cumulative[i])
			}
			fmt.Fprintf(out, "Total: %d ticks\n", resp.Total)
			if !resp.ArrivesAt.IsZero() {
				fmt.Fprintf(out, "Arrives at: %s\n", resp.ArrivesAt.Local().Format(time.RFC1123))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&carrierID, "carrier", "", "Carrier ID (required)")
	cmd.Flags().IntVar(&upto, "upto", 0, "Only aggregate up to this waypoint index (inclusive)")

	return cmd
}
