// This file implements the round-robin Dispatcher.
package dispatch

import (
	"errors"
	"sync/atomic"
)

// ErrNoBackends indicates SelectBackend was called with backendCount < 1.
var ErrNoBackends = errors.New("dispatch: no backends available")

// Dispatcher selects backend indices round-robin from a shared counter.
//
// The zero value is ready to use and starts at counter 0. Safe for
// concurrent use by any number of goroutines.
type Dispatcher struct {
	counter atomic.Uint64
}

// NewDispatcher returns a Dispatcher with its counter at zero.
func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// SelectBackend returns the next backend index in round-robin order and
// advances the shared counter by exactly 1.
//
// The claim of a counter value and its advance are one atomic step: two
// concurrent callers always receive distinct consecutive values. The index
// is the claimed value mod backendCount.
//
// backendCount must be ≥ 1; otherwise ErrNoBackends is returned and the
// counter does not advance.
func (d *Dispatcher) SelectBackend(backendCount int) (int, error) {
	if backendCount < 1 {
		return 0, ErrNoBackends
	}

	// Add returns the new value; subtracting 1 yields the value this caller
	// exclusively claimed.
	claimed := d.counter.Add(1) - 1

	return int(claimed % uint64(backendCount)), nil
}

// Counter returns the number of selections performed so far. Intended for
// observability and tests.
func (d *Dispatcher) Counter() uint64 { return d.counter.Load() }

// Reset sets the counter back to zero.
//
// This is an explicit administrative action. It must not be wired to
// presentation-layer reset gestures, which are required to leave round-robin
// state untouched.
func (d *Dispatcher) Reset() { d.counter.Store(0) }
