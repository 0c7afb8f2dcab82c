// Package core defines the fundamental Node, Edge, and Graph types for the
// routesim routing simulator, and the Load constructor that turns a raw
// Definition into a validated, immutable Graph.
//
// Overview:
//
//   - A Graph is a weighted directed adjacency mapping: each Node owns an
//     ordered sequence of outgoing Edges. Parallel edges between the same
//     pair of nodes are permitted and are never deduplicated.
//   - Graphs are constructed exactly once, at startup, via Load. After Load
//     returns, the Graph is read-only for the lifetime of the process: there
//     is no AddNode/AddEdge on Graph, and all accessors hand out copies.
//     Read-only data needs no locking, so a single Graph may be shared by
//     any number of concurrent readers.
//
// Validation (performed by Load, fail-fast at startup):
//
//   - Every Node referenced as an edge endpoint must appear as a key in the
//     Definition, even if its own edge list is empty. Isolated nodes are
//     valid and representable: declare them with an empty (or nil) arc list.
//   - Edge costs must be non-negative. The shortest-path engine assumes this
//     precondition and is undefined for negative costs, so Load rejects them
//     before any engine ever runs.
//   - All violations found in one Load call are accumulated (multierr) and
//     returned together under the ErrInvalidGraph sentinel, so a broken
//     definition surfaces every problem at once rather than one per restart.
//
// Errors (sentinel):
//
//   - ErrInvalidGraph  – the Definition is malformed (missing endpoint key,
//     negative cost, empty node ID). Fatal at load time.
//   - ErrUnknownNode   – a lookup referenced a node absent from the Graph.
//     Surfaced per request, never fatal.
//
// Example usage:
//
//	def := core.Definition{
//	    "A": {{To: "B", Cost: 1}},
//	    "B": {},
//	}
//	g, err := core.Load(def)
//	if err != nil {
//	    log.Fatal(err) // startup must not proceed with a broken graph
//	}
//	edges, _ := g.Neighbors("A")
package core
