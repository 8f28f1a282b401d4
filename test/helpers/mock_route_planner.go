package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

// MockRoutePlanner simulates a RoutePlanner for transport and client tests
type MockRoutePlanner struct {
	mu sync.RWMutex

	routeResponse     *routing.RouteResponse
	etaResponse       *routing.ETAResponse
	reachableResponse *routing.ReachableResponse
	err               error // Returned by every call when set

	calls []string
}

// NewMockRoutePlanner creates a mock planner answering with a direct A → B route
func NewMockRoutePlanner() *MockRoutePlanner {
	return &MockRoutePlanner{}
}

// SetRouteResponse configures the PlanRoute response
func (m *MockRoutePlanner) SetRouteResponse(response *routing.RouteResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routeResponse = response
}

// SetETAResponse configures the EstimateArrival response
func (m *MockRoutePlanner) SetETAResponse(response *routing.ETAResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.etaResponse = response
}

// SetReachableResponse configures the ReachableStars response
func (m *MockRoutePlanner) SetReachableResponse(response *routing.ReachableResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reachableResponse = response
}

// SetError makes every call fail with err
func (m *MockRoutePlanner) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the names of the operations invoked so far
func (m *MockRoutePlanner) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string{}, m.calls...)
}

func (m *MockRoutePlanner) record(call string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
	return m.err
}

// PlanRoute returns the configured route, or a one-hop route to the destination
func (m *MockRoutePlanner) PlanRoute(ctx context.Context, request *routing.RouteRequest) (*routing.RouteResponse, error) {
	if err := m.record("PlanRoute"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.routeResponse != nil {
		return m.routeResponse, nil
	}

	source := request.SourceStarID
	if source == "" {
		source = "A"
	}
	return &routing.RouteResponse{
		Stars: []string{source, request.DestinationStarID},
		Steps: []*routing.RouteStepData{
			{From: source, To: request.DestinationStarID, Distance: 100, Ticks: 4},
		},
		TotalTicks:    4,
		TotalDistance: 100,
		Reachable:     true,
		Mode:          "dijkstra",
	}, nil
}

// EstimateArrival returns the configured ETA, or an empty one
func (m *MockRoutePlanner) EstimateArrival(ctx context.Context, request *routing.ETARequest) (*routing.ETAResponse, error) {
	if err := m.record("EstimateArrival"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.etaResponse != nil {
		return m.etaResponse, nil
	}
	return &routing.ETAResponse{CarrierID: request.CarrierID, PerWaypoint: []int{}, Cumulative: []int{}}, nil
}

// ReachableStars returns the configured neighbors, or none
func (m *MockRoutePlanner) ReachableStars(ctx context.Context, request *routing.ReachableRequest) (*routing.ReachableResponse, error) {
	if err := m.record("ReachableStars"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.reachableResponse != nil {
		return m.reachableResponse, nil
	}
	return &routing.ReachableResponse{StarID: request.StarID, Neighbors: []string{}}, nil
}

// Reset clears all configured state
func (m *MockRoutePlanner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routeResponse = nil
	m.etaResponse = nil
	m.reachableResponse = nil
	m.err = nil
	m.calls = nil
}

var _ routing.RoutePlanner = (*MockRoutePlanner)(nil)
