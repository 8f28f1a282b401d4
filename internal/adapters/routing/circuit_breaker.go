package routing

import (
	"errors"
	"sync"
	"time"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// CircuitState represents the state of the circuit breaker
type CircuitState int

const (
	// CircuitClosed lets every call through to the daemon
	CircuitClosed CircuitState = iota
	// CircuitOpen fails calls immediately
	CircuitOpen
	// CircuitHalfOpen lets one trial call through after the cooldown
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var (
	// ErrCircuitOpen is returned while the routing daemon is considered down
	ErrCircuitOpen = errors.New("routing daemon circuit breaker open")
)

const (
	defaultMaxFailures = 5
	defaultCooldown    = 30 * time.Second
)

// CircuitBreaker stops calling an unhealthy routing daemon after maxFailures
// consecutive failures and tries it again once cooldown has elapsed
type CircuitBreaker struct {
	maxFailures     int
	cooldown        time.Duration
	state           CircuitState
	failureCount    int
	lastFailureTime time.Time
	trialInFlight   bool
	mu              sync.Mutex
	clock           shared.Clock
}

// NewCircuitBreaker creates a closed circuit breaker. A nil clock uses the
// system time.
func NewCircuitBreaker(maxFailures int, cooldown time.Duration, clock shared.Clock) *CircuitBreaker {
	if clock == nil {
		clock = shared.RealClock{}
	}
	if maxFailures < 1 {
		maxFailures = 1
	}
	return &CircuitBreaker{
		maxFailures: maxFailures,
		cooldown:    cooldown,
		state:       CircuitClosed,
		clock:       clock,
	}
}

// Call runs fn unless the circuit is open. A non-nil error from fn counts as
// a failure. Once the cooldown has elapsed a single trial call reaches the daemon;
// others keep getting ErrCircuitOpen until the trial returns.
func (cb *CircuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	trial := false
	switch cb.state {
	case CircuitOpen:
		if cb.clock.Now().Sub(cb.lastFailureTime) < cb.cooldown {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = CircuitHalfOpen
		cb.trialInFlight = true
		trial = true
	case CircuitHalfOpen:
		if cb.trialInFlight {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.trialInFlight = true
		trial = true
	}
	cb.mu.Unlock()

	// fn runs unlocked so a slow daemon does not serialize callers
	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if trial {
		cb.trialInFlight = false
	}
	if err != nil {
		cb.onFailure()
		return err
	}
	cb.onSuccess()
	return nil
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = cb.clock.Now()

	if cb.state == CircuitHalfOpen || cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0
	cb.state = CircuitClosed
}

// State returns the current circuit state
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// FailureCount returns the current consecutive failure count
func (cb *CircuitBreaker) FailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failureCount
}

// Reset closes the circuit
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.state = CircuitClosed
	cb.failureCount = 0
	cb.trialInFlight = false
}
