// Package routing implements the request orchestrator of the routing
// simulator: it receives (from, to) route requests, picks a regional backend
// round-robin, simulates per-request latency and transient backend failure,
// and runs the shortest-path engine against the chosen backend's graph.
//
// Pipeline per Submit call:
//
//  1. Endpoint validation. A missing endpoint fails with ErrMissingEndpoint
//     before any dispatch happens — the round-robin counter must not advance
//     for malformed requests.
//  2. Backend selection via dispatch.Dispatcher (counter advances here, and
//     only here, exactly once per request).
//  3. Artificial latency: base + uniform jitter, slept on the caller's
//     goroutine through an injectable clock. Every outcome pays the delay,
//     failures included. Callers that need to stay responsive submit from
//     their own goroutines (or use SubmitAsync); one in-flight request never
//     blocks another.
//  4. Failure draw. When the uniform draw falls below the configured failure
//     rate the request ends as StatusBackendFailure and the engine is never
//     invoked — the simulated backend simply does not respond. The draw
//     deliberately precedes computation; do not reorder to compute-then-
//     discard.
//  5. Engine computation on the selected backend's graph, yielding
//     StatusFound or StatusNotFound. An unknown endpoint surfaces as a
//     request-level error (StatusError), never as NotFound.
//
// Once submitted, a request runs to completion: the delay is not
// cancellable and no internal retries happen. A BackendFailure is terminal;
// retrying means a fresh Submit, which advances the round-robin counter.
//
// Every result carries the backend index that handled (or would have
// handled) the request plus a UUID request ID, so the presentation layer can
// log activity without reaching into the core. With a zap logger injected,
// the service emits one structured line per request.
//
// Optional wiring:
//
//   - WithCache(n) memoizes engine results per (backend, from, to) in an LRU
//     cache. Cache hits still pay latency and the failure draw, so every
//     dispatch-observable property (counter, fairness, failure rate) is
//     unchanged.
//   - WithMetrics(reg) registers Prometheus counters for requests by status
//     and dispatches by backend.
package routing
