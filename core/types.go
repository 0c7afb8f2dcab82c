// This file declares Node, Arc, Edge, Definition, and the sentinel errors
// shared by every package that consumes a Graph.
package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrInvalidGraph indicates a malformed Definition: an edge endpoint that
	// is not declared as a key, a negative edge cost, or an empty node ID.
	// Load-time only; a process must not start with a broken graph.
	ErrInvalidGraph = errors.New("core: invalid graph definition")

	// ErrUnknownNode indicates an operation referenced a node that does not
	// exist in the graph. Surfaced to the caller as a request failure.
	ErrUnknownNode = errors.New("core: unknown node")
)

// Node is an opaque identifier for a routable point in a graph.
//
// The set of valid Nodes is fixed per Graph at Load time.
type Node string

// Arc describes one outgoing connection inside a Definition: the destination
// node and the non-negative traversal cost. The source is the Definition key
// the Arc is listed under.
type Arc struct {
	// To is the destination node ID.
	To Node

	// Cost is the non-negative traversal cost of this connection.
	Cost float64
}

// Edge is a fully-qualified directed connection as stored in a Graph.
//
// Multiple Edges between the same (From, To) pair are permitted; algorithms
// consider all of them.
type Edge struct {
	// From is the source node ID.
	From Node

	// To is the destination node ID.
	To Node

	// Cost is the non-negative traversal cost.
	Cost float64
}

// Definition is the raw graph description submitted to Load: each key is a
// node, each value its ordered sequence of outgoing Arcs.
//
// A node with no outgoing connections is declared with an empty or nil Arc
// list. Every Arc.To must itself appear as a key, or Load fails with
// ErrInvalidGraph.
type Definition map[Node][]Arc
