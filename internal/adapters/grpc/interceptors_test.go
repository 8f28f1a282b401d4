package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: PlanRouteMethod}

func TestTimeoutInterceptor_SetsDeadline(t *testing.T) {
	// Arrange
	interceptor := TimeoutInterceptor(time.Second)
	var deadline time.Time
	var hasDeadline bool

	// Act
	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		deadline, hasDeadline = ctx.Deadline()
		return nil, nil
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestTimeoutInterceptor_ZeroLeavesContextAlone(t *testing.T) {
	// Arrange
	interceptor := TimeoutInterceptor(0)
	var hasDeadline bool

	// Act
	_, _ = interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		_, hasDeadline = ctx.Deadline()
		return nil, nil
	})

	// Assert
	assert.False(t, hasDeadline)
}

func TestToStatusError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", shared.NewNotFoundError("carrier", "C9"), codes.NotFound},
		{"invalid input", shared.NewInvalidInputError("mode", "bad"), codes.InvalidArgument},
		{"wrapped invalid input", errors.Join(errors.New("ctx"), shared.NewInvalidInputError("x", "y")), codes.InvalidArgument},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"other", errors.New("boom"), codes.Internal},
		{"already a status", status.Error(codes.ResourceExhausted, "slow down"), codes.ResourceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(ToStatusError(tt.err)))
		})
	}

	assert.NoError(t, ToStatusError(nil))
}

func TestFromStatusError_RestoresDomainErrors(t *testing.T) {
	assert.True(t, shared.IsNotFound(FromStatusError(status.Error(codes.NotFound, "game not found: g"))))
	assert.True(t, shared.IsInvalidInput(FromStatusError(status.Error(codes.InvalidArgument, "bad"))))
	assert.ErrorIs(t, FromStatusError(status.Error(codes.DeadlineExceeded, "late")), context.DeadlineExceeded)

	plain := errors.New("plain")
	assert.Equal(t, plain, FromStatusError(plain))
}
