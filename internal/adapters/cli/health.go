package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcadapter "github.com/andrescamacho/galaxy-routing-go/internal/adapters/grpc"
)

// NewHealthCommand creates the health command
func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check routing daemon health status",
		Long:  `Verify that the routing daemon is running and serving the routing service.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			conn, err := grpc.NewClient(cfg.Routing.Address,
				grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("failed to connect to routing daemon: %w", err)
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Routing.ConnectTimeout)
			defer cancel()

			resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{
				Service: grpcadapter.RoutingServiceName,
			})
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Routing daemon is healthy")
			fmt.Fprintf(cmd.OutOrStdout(), "  Address:  %s\n", cfg.Routing.Address)
			fmt.Fprintf(cmd.OutOrStdout(), "  Status:   %s\n", resp.Status)
			return nil
		},
	}

	return cmd
}
