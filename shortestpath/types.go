// This file declares the Result type, sentinel errors, and functional
// options for the shortest-path engine.
package shortestpath

import (
	"errors"
	"math"

	"github.com/katalvlaran/routesim/core"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative cap.
	ErrBadMaxCost = errors.New("shortestpath: MaxCost must be non-negative")
)

// Result is the outcome of one Compute call.
//
// When Reachable is true, Path holds the node sequence from src to dst
// inclusive and Cost the summed edge costs along it. When Reachable is
// false, dst cannot be reached from src; Path is nil and Cost is +Inf.
type Result struct {
	// Reachable reports whether any path from src to dst exists.
	Reachable bool

	// Path is the ordered node sequence src..dst. Nil when unreachable.
	Path []core.Node

	// Cost is the total cost of Path, or +Inf when unreachable.
	Cost float64
}

// Options configures the behavior of Compute.
//
// MaxCost – cap on distances to explore; nodes whose tentative distance
// exceeds it are never settled. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxCost float64
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithMaxCost sets a maximum path-cost threshold. Nodes farther than max
// from src are not explored; a dst beyond the cap reports unreachable.
// Negative values panic with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options used when no overrides are supplied.
//
// Defaults:
//   - MaxCost: +Inf (explore everything reachable).
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}
