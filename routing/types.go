// This file declares outcome types, sentinel errors, and functional options
// for the routing service.
package routing

import (
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/shortestpath"
)

// Sentinel errors returned by the routing service.
var (
	// ErrMissingEndpoint indicates that from or to was empty. Checked before
	// dispatch: no backend selection and no counter advance occur.
	ErrMissingEndpoint = errors.New("routing: missing route endpoint")

	// ErrNilBackend indicates NewService was given a nil graph.
	ErrNilBackend = errors.New("routing: backend graph is nil")

	// ErrBadFailureRate indicates WithFailureRate was given a value outside [0, 1].
	ErrBadFailureRate = errors.New("routing: failure rate must be within [0, 1]")

	// ErrBadLatency indicates WithLatency was given a negative duration.
	ErrBadLatency = errors.New("routing: latency durations must be non-negative")

	// ErrBadCacheSize indicates WithCache was given a non-positive size.
	ErrBadCacheSize = errors.New("routing: cache size must be positive")
)

// Status classifies the outcome of one submitted request.
type Status int

const (
	// StatusFound – a shortest path was computed.
	StatusFound Status = iota

	// StatusNotFound – no path exists between the endpoints. A normal,
	// expected outcome, not an error.
	StatusNotFound

	// StatusBackendFailure – the simulated backend never responded. Normal
	// and expected under a configured failure rate; terminal for this
	// request.
	StatusBackendFailure

	// StatusError – the request itself was bad (missing endpoint, unknown
	// node). Details are in RouteResult.Err.
	StatusError
)

// String returns the label used in logs and metrics.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusBackendFailure:
		return "backend_failure"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// RouteResult is the structured outcome of one Submit call.
type RouteResult struct {
	// RequestID uniquely identifies this request for log correlation.
	RequestID string

	// Backend is the index that handled (or would have handled) the request.
	// -1 when the request was rejected before dispatch.
	Backend int

	// Status classifies the outcome.
	Status Status

	// Path is the node sequence from→to when Status is StatusFound.
	Path []core.Node

	// Cost is the total path cost when Status is StatusFound.
	Cost float64

	// Err carries the request-level error when Status is StatusError.
	Err error
}

// Outcome pairs a RouteResult with its request-level error, for delivery on
// a channel from SubmitAsync.
type Outcome struct {
	Result RouteResult
	Err    error
}

// Engine computes a shortest path over one backend graph. The default is
// shortestpath.Compute; tests substitute probes to observe invocations.
type Engine func(g *core.Graph, src, dst core.Node, opts ...shortestpath.Option) (shortestpath.Result, error)

// Options configures a Service.
//
// LatencyBase   – fixed artificial delay applied to every request.
// LatencyJitter – upper bound of the uniform random delay added on top.
// FailureRate   – probability in [0, 1] that a request ends as
// StatusBackendFailure without consulting the engine.
// Seed          – seed for the failure/jitter random source; fixed default
// keeps simulations reproducible run to run.
type Options struct {
	LatencyBase   time.Duration
	LatencyJitter time.Duration
	FailureRate   float64
	Seed          int64
	Logger        *zap.Logger
	Clock         clock.Clock
	Engine        Engine
	// CacheSize enables the LRU route cache when positive; 0 disables it.
	CacheSize int

	// Registerer receives the Prometheus collectors; nil disables metrics.
	Registerer prometheus.Registerer
}

// Option represents a functional option for configuring a Service.
type Option func(*Options)

// WithLatency sets the artificial delay: base plus a uniform jitter in
// [0, jitter). Negative values panic with ErrBadLatency.
func WithLatency(base, jitter time.Duration) Option {
	return func(o *Options) {
		if base < 0 || jitter < 0 {
			panic(ErrBadLatency.Error())
		}
		o.LatencyBase = base
		o.LatencyJitter = jitter
	}
}

// WithFailureRate sets the simulated backend failure probability.
// Values outside [0, 1] panic with ErrBadFailureRate.
func WithFailureRate(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			panic(ErrBadFailureRate.Error())
		}
		o.FailureRate = p
	}
}

// WithSeed fixes the seed of the failure/jitter random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger installs a structured logger. The default is zap.NewNop(): the
// library never logs unless asked to.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock substitutes the time source used for latency simulation.
// Pass a clock.Mock in tests to make delays instantaneous and deterministic.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithEngine substitutes the shortest-path engine. Intended for tests and
// instrumentation wrappers.
func WithEngine(e Engine) Option {
	return func(o *Options) {
		if e != nil {
			o.Engine = e
		}
	}
}

// WithCache enables LRU memoization of engine results, keyed by
// (backend, from, to). size must be positive or the option panics with
// ErrBadCacheSize. Cache hits still pay latency and the failure draw.
func WithCache(size int) Option {
	return func(o *Options) {
		if size <= 0 {
			panic(ErrBadCacheSize.Error())
		}
		o.CacheSize = size
	}
}

// WithMetrics registers request counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// submitConfig holds the simulation knobs effective for one request:
// service-level defaults, possibly overridden per call.
type submitConfig struct {
	latencyBase   time.Duration
	latencyJitter time.Duration
	failureRate   float64
}

// SubmitOption overrides one simulation parameter for a single Submit call.
// Omitted parameters keep the service-level (documented) defaults.
type SubmitOption func(*submitConfig)

// WithRequestLatency overrides the artificial delay for this request only.
// Negative values panic with ErrBadLatency.
func WithRequestLatency(base, jitter time.Duration) SubmitOption {
	return func(c *submitConfig) {
		if base < 0 || jitter < 0 {
			panic(ErrBadLatency.Error())
		}
		c.latencyBase = base
		c.latencyJitter = jitter
	}
}

// WithRequestFailureRate overrides the failure probability for this request
// only. Values outside [0, 1] panic with ErrBadFailureRate.
func WithRequestFailureRate(p float64) SubmitOption {
	return func(c *submitConfig) {
		if p < 0 || p > 1 {
			panic(ErrBadFailureRate.Error())
		}
		c.failureRate = p
	}
}

// DefaultOptions returns the Options used when no overrides are supplied.
//
// Defaults:
//   - LatencyBase:   120ms
//   - LatencyJitter: 80ms
//   - FailureRate:   0.1
//   - Seed:          1 (reproducible simulation)
//   - Logger:        zap.NewNop()
//   - Clock:         clock.New() (real time)
//   - Engine:        shortestpath.Compute
//   - CacheSize:     0 (disabled)
//   - Registerer:    nil (disabled)
func DefaultOptions() Options {
	return Options{
		LatencyBase:   120 * time.Millisecond,
		LatencyJitter: 80 * time.Millisecond,
		FailureRate:   0.1,
		Seed:          1,
		Logger:        zap.NewNop(),
		Clock:         clock.New(),
		Engine:        shortestpath.Compute,
	}
}
