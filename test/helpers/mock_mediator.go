package helpers

import (
	"context"
	"fmt"
	"reflect"

	"github.com/andrescamacho/galaxy-routing-go/internal/application/common"
)

// MockMediator is a test double for the Mediator interface. It records every
// request and answers through a configurable send function.
type MockMediator struct {
	sendFunc func(ctx context.Context, request common.Request) (common.Response, error)
	requests []common.Request
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request common.Request) (common.Response, error) {
	m.requests = append(m.requests, request)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, request)
	}
	return nil, fmt.Errorf("unsupported request type: %T", request)
}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request common.Request) (common.Response, error)) {
	m.sendFunc = fn
}

// Requests returns the requests sent so far
func (m *MockMediator) Requests() []common.Request {
	return append([]common.Request{}, m.requests...)
}

// LastRequest returns the most recent request, nil when none was sent
func (m *MockMediator) LastRequest() common.Request {
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Register implements the Mediator interface (no-op for tests)
func (m *MockMediator) Register(requestType reflect.Type, handler common.RequestHandler) error {
	return nil
}

// RegisterMiddleware implements the Mediator interface (no-op for tests)
func (m *MockMediator) RegisterMiddleware(middleware common.Middleware) {}

var _ common.Mediator = (*MockMediator)(nil)
