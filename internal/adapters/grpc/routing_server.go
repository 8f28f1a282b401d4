package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

// ServerOptions configures the routing gRPC server
type ServerOptions struct {
	// Requests per second across all methods, zero disables limiting
	RateLimit float64
	Burst     int

	// Upper bound on one call, zero leaves the client deadline alone
	RequestTimeout time.Duration

	Logger common.Logger
}

// RoutingServer serves the routing service over gRPC
type RoutingServer struct {
	grpcServer *grpc.Server
	health     *health.Server
}

// NewRoutingServer creates a server answering through the given planner
func NewRoutingServer(planner domainRouting.RoutePlanner, opts ServerOptions) *RoutingServer {
	logger := opts.Logger
	if logger == nil {
		logger = common.LoggerFromContext(context.Background())
	}

	interceptors := []grpc.UnaryServerInterceptor{LoggingInterceptor(logger)}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		interceptors = append(interceptors, RateLimitInterceptor(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}
	interceptors = append(interceptors, TimeoutInterceptor(opts.RequestTimeout))

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	RegisterRoutingServiceServer(grpcServer, newRoutingService(planner))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(RoutingServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &RoutingServer{
		grpcServer: grpcServer,
		health:     healthServer,
	}
}

// Serve accepts connections until Stop or GracefulStop is called
func (s *RoutingServer) Serve(listener net.Listener) error {
	if err := s.grpcServer.Serve(listener); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("gRPC server error: %w", err)
	}
	return nil
}

// GracefulStop marks the service as not serving and drains in-flight calls
func (s *RoutingServer) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

// Stop closes all connections immediately
func (s *RoutingServer) Stop() {
	s.health.Shutdown()
	s.grpcServer.Stop()
}

// routingService adapts a RoutePlanner to RoutingServiceServer
type routingService struct {
	planner domainRouting.RoutePlanner
}

func newRoutingService(planner domainRouting.RoutePlanner) *routingService {
	return &routingService{planner: planner}
}

func (s *routingService) PlanRoute(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := DecodeRouteRequest(in)
	if err != nil {
		return nil, ToStatusError(invalidPayload(err))
	}
	resp, err := s.planner.PlanRoute(ctx, req)
	if err != nil {
		return nil, ToStatusError(err)
	}
	out, err := EncodeRouteResponse(resp)
	return out, ToStatusError(err)
}

func (s *routingService) CarrierETA(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := DecodeETARequest(in)
	if err != nil {
		return nil, ToStatusError(invalidPayload(err))
	}
	resp, err := s.planner.EstimateArrival(ctx, req)
	if err != nil {
		return nil, ToStatusError(err)
	}
	out, err := EncodeETAResponse(resp)
	return out, ToStatusError(err)
}

func (s *routingService) ReachableStars(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := DecodeReachableRequest(in)
	if err != nil {
		return nil, ToStatusError(invalidPayload(err))
	}
	resp, err := s.planner.ReachableStars(ctx, req)
	if err != nil {
		return nil, ToStatusError(err)
	}
	out, err := EncodeReachableResponse(resp)
	return out, ToStatusError(err)
}
