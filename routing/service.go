// This file implements the Service orchestrator and its Submit pipeline.
package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/dispatch"
	"github.com/katalvlaran/routesim/shortestpath"
)

// Backend is one regional server: an index plus its private graph.
type Backend struct {
	// Index is the position used by round-robin selection and logging.
	Index int

	// Graph is the backend's immutable routing graph.
	Graph *core.Graph
}

// cacheKey addresses one memoized engine result.
type cacheKey struct {
	backend  int
	from, to core.Node
}

// Service dispatches route requests across a fixed set of backends.
//
// The backend set is fixed at construction; graphs are read-only, so a
// single Service is safe for concurrent Submit calls from any number of
// goroutines.
type Service struct {
	backends []Backend
	disp     *dispatch.Dispatcher
	sampler  *dispatch.FailureSampler
	opts     Options
	cache    *lru.Cache[cacheKey, shortestpath.Result]
	metrics  *serviceMetrics
}

// NewService builds a Service over the given backend graphs, one backend per
// graph in order (backend i serves graphs[i]).
//
// Configuration errors are fatal: an empty graph list fails with
// dispatch.ErrNoBackends and a nil graph with ErrNilBackend — the process
// must not start half-wired.
func NewService(graphs []*core.Graph, opts ...Option) (*Service, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the backend set.
	if len(graphs) == 0 {
		return nil, dispatch.ErrNoBackends
	}
	backends := make([]Backend, len(graphs))
	for i, g := range graphs {
		if g == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilBackend, i)
		}
		backends[i] = Backend{Index: i, Graph: g}
	}

	s := &Service{
		backends: backends,
		disp:     dispatch.NewDispatcher(),
		sampler:  dispatch.NewFailureSampler(cfg.Seed),
		opts:     cfg,
	}

	// 3) Optional route cache.
	if cfg.CacheSize > 0 {
		cache, err := lru.New[cacheKey, shortestpath.Result](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("routing: building route cache: %w", err)
		}
		s.cache = cache
	}

	// 4) Optional metrics.
	if cfg.Registerer != nil {
		s.metrics = newServiceMetrics(cfg.Registerer)
	}

	return s, nil
}

// BackendCount returns the number of configured backends.
func (s *Service) BackendCount() int { return len(s.backends) }

// Dispatcher exposes the round-robin state for observability. The counter it
// reports advances once per dispatched request.
func (s *Service) Dispatcher() *dispatch.Dispatcher { return s.disp }

// Submit routes one request from → to.
//
// The returned RouteResult always identifies the backend that handled (or
// would have handled) the request once dispatch happened; Backend is -1 only
// for requests rejected by endpoint validation. The error return is non-nil
// exactly when Status is StatusError (missing endpoint, unknown node);
// NotFound and BackendFailure are normal outcomes with a nil error.
//
// Per-request simulation overrides (latency, failure rate) may be supplied
// via SubmitOptions; anything omitted keeps the service defaults.
//
// ctx is accepted for call-site symmetry, but a submitted request is not
// cancellable: it always runs to completion through its artificial delay.
func (s *Service) Submit(ctx context.Context, from, to core.Node, opts ...SubmitOption) (RouteResult, error) {
	// 1) Endpoint validation, strictly before dispatch.
	if from == "" || to == "" {
		err := fmt.Errorf("%w: from=%q to=%q", ErrMissingEndpoint, from, to)
		res := RouteResult{Backend: -1, Status: StatusError, Err: err}
		s.observe(res, 0)

		return res, err
	}

	// 2) Resolve the per-request simulation knobs.
	cfg := submitConfig{
		latencyBase:   s.opts.LatencyBase,
		latencyJitter: s.opts.LatencyJitter,
		failureRate:   s.opts.FailureRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Select the backend; the shared counter advances exactly here.
	idx, err := s.disp.SelectBackend(len(s.backends))
	if err != nil {
		// Unreachable after NewService validation, but never swallowed.
		res := RouteResult{Backend: -1, Status: StatusError, Err: err}
		s.observe(res, 0)

		return res, err
	}

	requestID := uuid.NewString()
	started := s.opts.Clock.Now()

	// 4) Artificial latency: base + uniform jitter, paid by every outcome.
	delay := cfg.latencyBase + time.Duration(s.sampler.Jitter(float64(cfg.latencyJitter)))
	if delay > 0 {
		s.opts.Clock.Sleep(delay)
	}

	// 5) Failure draw BEFORE computing: a failed backend never responds, so
	//    the engine must not run at all.
	if s.sampler.Draw(cfg.failureRate) {
		res := RouteResult{RequestID: requestID, Backend: idx, Status: StatusBackendFailure}
		s.observe(res, s.opts.Clock.Now().Sub(started))

		return res, nil
	}

	// 6) Compute (or recall) the shortest path on the selected backend.
	sp, err := s.lookup(idx, from, to)
	if err != nil {
		res := RouteResult{RequestID: requestID, Backend: idx, Status: StatusError, Err: err}
		s.observe(res, s.opts.Clock.Now().Sub(started))

		return res, err
	}

	res := RouteResult{RequestID: requestID, Backend: idx, Status: StatusFound, Path: sp.Path, Cost: sp.Cost}
	if !sp.Reachable {
		res = RouteResult{RequestID: requestID, Backend: idx, Status: StatusNotFound}
	}
	s.observe(res, s.opts.Clock.Now().Sub(started))

	return res, nil
}

// SubmitAsync runs Submit on its own goroutine and delivers the Outcome on
// the returned buffered channel. The caller stays responsive while the
// request is in flight; the request itself still runs to completion.
func (s *Service) SubmitAsync(ctx context.Context, from, to core.Node, opts ...SubmitOption) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		res, err := s.Submit(ctx, from, to, opts...)
		ch <- Outcome{Result: res, Err: err}
	}()

	return ch
}

// lookup answers from the route cache when enabled, falling back to the
// engine and memoizing its result. Only pure engine results are cached, so
// dispatch-observable behavior is identical with and without the cache.
func (s *Service) lookup(backend int, from, to core.Node) (shortestpath.Result, error) {
	if s.cache != nil {
		if sp, ok := s.cache.Get(cacheKey{backend: backend, from: from, to: to}); ok {
			return sp, nil
		}
	}

	sp, err := s.opts.Engine(s.backends[backend].Graph, from, to)
	if err != nil {
		return shortestpath.Result{}, err
	}
	if s.cache != nil {
		s.cache.Add(cacheKey{backend: backend, from: from, to: to}, sp)
	}

	return sp, nil
}

// observe emits the per-request log line and metric increments.
func (s *Service) observe(res RouteResult, elapsed time.Duration) {
	fields := []zap.Field{
		zap.String("request_id", res.RequestID),
		zap.Int("backend", res.Backend),
		zap.Stringer("status", res.Status),
		zap.Duration("elapsed", elapsed),
	}
	switch res.Status {
	case StatusFound:
		fields = append(fields, zap.Float64("cost", res.Cost), zap.Int("hops", len(res.Path)-1))
		s.opts.Logger.Info("route computed", fields...)
	case StatusNotFound:
		s.opts.Logger.Info("no route exists", fields...)
	case StatusBackendFailure:
		s.opts.Logger.Warn("backend did not respond", fields...)
	case StatusError:
		fields = append(fields, zap.Error(res.Err))
		s.opts.Logger.Warn("request rejected", fields...)
	}
	s.metrics.observe(res)
}
