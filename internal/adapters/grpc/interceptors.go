package grpc

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
)

// RateLimitInterceptor rejects calls beyond the limiter's budget with
// ResourceExhausted instead of queueing them
func RateLimitInterceptor(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !limiter.Allow() {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for %s", info.FullMethod)
		}
		return handler(ctx, req)
	}
}

// TimeoutInterceptor bounds every call; a shorter client deadline still wins
func TimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if timeout <= 0 {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return handler(ctx, req)
	}
}

// LoggingInterceptor attaches the logger to the request context and logs
// each call with its outcome
func LoggingInterceptor(logger common.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		ctx = common.WithLogger(ctx, logger)

		resp, err := handler(ctx, req)

		metadata := map[string]interface{}{
			"method":      info.FullMethod,
			"duration_ms": time.Since(start).Milliseconds(),
			"code":        status.Code(err).String(),
		}
		if err != nil {
			metadata["error"] = err.Error()
			logger.Log("WARNING", "[gRPC] call failed", metadata)
		} else {
			logger.Log("DEBUG", "[gRPC] call served", metadata)
		}
		return resp, err
	}
}
