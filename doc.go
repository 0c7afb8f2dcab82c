// Package routesim is an in-process simulator of a distributed routing
// service: a client submits a (source, destination) pair, a dispatcher
// forwards it round-robin to one of several regional backends, and the
// chosen backend computes a shortest path over its own weighted graph.
//
// What routesim provides:
//
//   - Immutable weighted directed graphs, validated once at load
//   - A point-to-point shortest-path engine (label-setting search with a
//     lazy-deletion priority queue and early exit)
//   - Round-robin backend dispatch over a process-wide atomic counter
//   - Simulated per-request latency and transient backend failure, both
//     configurable and reproducible under a fixed seed
//   - A nearest-node coordinate table for map-driven callers
//
// What routesim deliberately does not provide: real network transport
// (backends are in-process graph instances), geocoding, persistence, or any
// wire/CLI surface. The library is consumed in-process; rendering and user
// interaction belong to the caller.
//
// Package map:
//
//	core/         — Node, Edge, Definition, immutable Graph + Load validation
//	pqueue/       — generic (priority, item) binary min-heap
//	shortestpath/ — the point-to-point engine
//	dispatch/     — round-robin counter + seedable failure sampler
//	routing/      — the Submit orchestrator (latency, failure, logging,
//	                optional cache and metrics)
//	geo/          — node→coordinate table, nearest-node resolution
//
// Quick start:
//
//	g, err := core.Load(core.Definition{
//	    "A": {{To: "B", Cost: 1}},
//	    "B": {{To: "A", Cost: 1}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc, err := routing.NewService([]*core.Graph{g})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := svc.Submit(ctx, "A", "B")
package routesim
