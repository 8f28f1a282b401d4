package routing

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"

	grpcadapter "github.com/andrescamacho/galaxy-routing-go/internal/adapters/grpc"
	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// GRPCRoutingClient implements RoutePlanner against a remote routing daemon
type GRPCRoutingClient struct {
	conn    *grpc.ClientConn
	breaker *CircuitBreaker
}

// NewGRPCRoutingClient connects to the routing daemon and checks its health
// service, failing when the daemon does not report SERVING within
// connectTimeout. Extra dial options are appended to the insecure transport.
func NewGRPCRoutingClient(address string, connectTimeout time.Duration, opts ...grpc.DialOption) (*GRPCRoutingClient, error) {
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create routing daemon client for %s: %w", address, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx,
		&healthpb.HealthCheckRequest{Service: grpcadapter.RoutingServiceName},
		grpc.WaitForReady(true),
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to routing daemon at %s: %w", address, err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		_ = conn.Close()
		return nil, fmt.Errorf("routing daemon at %s is %s", address, resp.GetStatus())
	}

	return NewGRPCRoutingClientFromConn(conn), nil
}

// NewGRPCRoutingClientFromConn wraps an existing connection
func NewGRPCRoutingClientFromConn(conn *grpc.ClientConn) *GRPCRoutingClient {
	return &GRPCRoutingClient{
		conn:    conn,
		breaker: NewCircuitBreaker(defaultMaxFailures, defaultCooldown, nil),
	}
}

// WithCircuitBreaker replaces the default circuit breaker
func (c *GRPCRoutingClient) WithCircuitBreaker(breaker *CircuitBreaker) *GRPCRoutingClient {
	c.breaker = breaker
	return c
}

// Close closes the gRPC connection
func (c *GRPCRoutingClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PlanRoute implements RoutePlanner.PlanRoute using gRPC
func (c *GRPCRoutingClient) PlanRoute(ctx context.Context, req *domainRouting.RouteRequest) (*domainRouting.RouteResponse, error) {
	in, err := grpcadapter.EncodeRouteRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode PlanRoute request: %w", err)
	}

	out, err := c.invoke(ctx, grpcadapter.PlanRouteMethod, in)
	if err != nil {
		return nil, fmt.Errorf("gRPC PlanRoute failed: %w", err)
	}

	return grpcadapter.DecodeRouteResponse(out)
}

// EstimateArrival implements RoutePlanner.EstimateArrival using gRPC
func (c *GRPCRoutingClient) EstimateArrival(ctx context.Context, req *domainRouting.ETARequest) (*domainRouting.ETAResponse, error) {
	in, err := grpcadapter.EncodeETARequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CarrierETA request: %w", err)
	}

	out, err := c.invoke(ctx, grpcadapter.CarrierETAMethod, in)
	if err != nil {
		return nil, fmt.Errorf("gRPC CarrierETA failed: %w", err)
	}

	return grpcadapter.DecodeETAResponse(out)
}

// ReachableStars implements RoutePlanner.ReachableStars using gRPC
func (c *GRPCRoutingClient) ReachableStars(ctx context.Context, req *domainRouting.ReachableRequest) (*domainRouting.ReachableResponse, error) {
	in, err := grpcadapter.EncodeReachableRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ReachableStars request: %w", err)
	}

	out, err := c.invoke(ctx, grpcadapter.ReachableStarsMethod, in)
	if err != nil {
		return nil, fmt.Errorf("gRPC ReachableStars failed: %w", err)
	}

	return grpcadapter.DecodeReachableResponse(out)
}

// invoke sends one unary call through the circuit breaker. Not found and
// invalid input replies mean the daemon is healthy, so they do not count as
// failures.
func (c *GRPCRoutingClient) invoke(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	var callErr error

	err := c.breaker.Call(func() error {
		if err := c.conn.Invoke(ctx, method, in, out); err != nil {
			callErr = grpcadapter.FromStatusError(err)
		}
		if shared.IsNotFound(callErr) || shared.IsInvalidInput(callErr) {
			return nil
		}
		return callErr
	})
	if err != nil {
		return nil, err
	}
	if callErr != nil {
		return nil, callErr
	}
	return out, nil
}
