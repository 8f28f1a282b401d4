package routing

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var errDaemonDown = errors.New("daemon down")

func failing() error { return errDaemonDown }

func succeeding() error { return nil }

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	// Arrange
	clock := &manualClock{now: time.Unix(1000, 0)}
	cb := NewCircuitBreaker(3, time.Minute, clock)

	// Act
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(failing), errDaemonDown)
	}
	calls := 0
	err := cb.Call(func() error { calls++; return nil })

	// Assert
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 0, calls)
	assert.Equal(t, CircuitOpen, cb.State())
	assert.Equal(t, 3, cb.FailureCount())
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	// Arrange
	cb := NewCircuitBreaker(2, time.Minute, &manualClock{})

	// Act
	_ = cb.Call(failing)
	require.NoError(t, cb.Call(succeeding))
	_ = cb.Call(failing)

	// Assert
	assert.Equal(t, CircuitClosed, cb.State())
	assert.Equal(t, 1, cb.FailureCount())
}

func TestCircuitBreaker_HalfOpenTrialCall(t *testing.T) {
	t.Run("success closes the circuit", func(t *testing.T) {
		// Arrange
		clock := &manualClock{now: time.Unix(1000, 0)}
		cb := NewCircuitBreaker(1, 30*time.Second, clock)
		_ = cb.Call(failing)
		require.Equal(t, CircuitOpen, cb.State())

		// Act
		clock.Advance(30 * time.Second)
		err := cb.Call(succeeding)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, CircuitClosed, cb.State())
		assert.Equal(t, 0, cb.FailureCount())
	})

	t.Run("failure reopens the circuit", func(t *testing.T) {
		// Arrange
		clock := &manualClock{now: time.Unix(1000, 0)}
		cb := NewCircuitBreaker(1, 30*time.Second, clock)
		_ = cb.Call(failing)

		// Act
		clock.Advance(time.Minute)
		err := cb.Call(failing)

		// Assert
		assert.ErrorIs(t, err, errDaemonDown)
		assert.Equal(t, CircuitOpen, cb.State())
		assert.ErrorIs(t, cb.Call(succeeding), ErrCircuitOpen)
	})
}

func TestCircuitBreaker_HalfOpenAllowsSingleTrialCall(t *testing.T) {
	// Arrange
	clock := &manualClock{now: time.Unix(1000, 0)}
	cb := NewCircuitBreaker(1, 30*time.Second, clock)
	_ = cb.Call(failing)
	clock.Advance(time.Minute)

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	trialDone := make(chan error, 1)
	go func() {
		trialDone <- cb.Call(func() error {
			calls.Add(1)
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// Act
	var wg sync.WaitGroup
	rejected := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rejected <- cb.Call(func() error {
				calls.Add(1)
				return nil
			})
		}()
	}
	wg.Wait()
	close(rejected)
	close(release)

	// Assert
	for err := range rejected {
		assert.ErrorIs(t, err, ErrCircuitOpen)
	}
	require.NoError(t, <-trialDone)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, CircuitClosed, cb.State())
	assert.NoError(t, cb.Call(succeeding))
}

func TestCircuitBreaker_Reset(t *testing.T) {
	// Arrange
	cb := NewCircuitBreaker(1, time.Hour, &manualClock{})
	_ = cb.Call(failing)

	// Act
	cb.Reset()

	// Assert
	assert.Equal(t, CircuitClosed, cb.State())
	assert.NoError(t, cb.Call(succeeding))
	assert.Equal(t, "closed", cb.State().String())
}
