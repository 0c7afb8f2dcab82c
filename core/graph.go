// This file implements Load and the read-only Graph accessors.
package core

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// Graph is an immutable weighted directed graph over a fixed node set.
//
// Construct with Load; zero-value Graphs are empty and useless. All methods
// are safe for unlimited concurrent use because nothing mutates after Load.
type Graph struct {
	// adjacency maps each node to its ordered outgoing edges.
	adjacency map[Node][]Edge

	// nodes is the sorted list of all node IDs, computed once at Load.
	nodes []Node

	// edgeCount is the total number of edges, counting parallels.
	edgeCount int
}

// Load validates def and builds an immutable Graph from it.
//
// Validation rules (all violations are accumulated and returned together,
// wrapped under ErrInvalidGraph):
//
//  1. Every node key must be a non-empty string.
//  2. Every Arc.To must be non-empty and must appear as a key in def —
//     including destinations of nodes with otherwise empty edge lists.
//  3. Every Arc.Cost must be non-negative.
//
// The returned Graph holds private copies of all data: later mutation of def
// by the caller cannot affect it. Loading the same Definition twice yields
// graphs with identical behavior for every lookup and every algorithm run.
//
// Complexity: O(V log V + E) — one sort of the node set plus one pass over
// all arcs.
func Load(def Definition) (*Graph, error) {
	// 1) Validate every key and every arc, accumulating all failures.
	var errs error
	for from, arcs := range def {
		if from == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: empty node ID used as key", ErrInvalidGraph))
			continue
		}
		for _, a := range arcs {
			if a.To == "" {
				errs = multierr.Append(errs, fmt.Errorf("%w: edge from %q has empty destination", ErrInvalidGraph, from))
				continue
			}
			if _, ok := def[a.To]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("%w: edge %s→%s references undeclared node %q", ErrInvalidGraph, from, a.To, a.To))
			}
			if a.Cost < 0 {
				errs = multierr.Append(errs, fmt.Errorf("%w: edge %s→%s has negative cost %g", ErrInvalidGraph, from, a.To, a.Cost))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}

	// 2) Copy the definition into private adjacency storage, qualifying each
	//    Arc into a full Edge. Order of arcs per node is preserved.
	adjacency := make(map[Node][]Edge, len(def))
	nodes := make([]Node, 0, len(def))
	edgeCount := 0
	for from, arcs := range def {
		edges := make([]Edge, len(arcs))
		for i, a := range arcs {
			edges[i] = Edge{From: from, To: a.To, Cost: a.Cost}
		}
		adjacency[from] = edges
		nodes = append(nodes, from)
		edgeCount += len(edges)
	}

	// 3) Sort the node list once so Nodes() is deterministic.
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return &Graph{adjacency: adjacency, nodes: nodes, edgeCount: edgeCount}, nil
}

// HasNode reports whether id exists in the graph.
func (g *Graph) HasNode(id Node) bool {
	_, ok := g.adjacency[id]

	return ok
}

// Neighbors returns a copy of the ordered outgoing edges of id.
//
// A valid node with no outgoing edges yields an empty slice, not an error.
// An unknown node yields ErrUnknownNode.
func (g *Graph) Neighbors(id Node) ([]Edge, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	// Hand out a copy so callers can never corrupt the shared graph.
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// Nodes returns a copy of all node IDs in ascending order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of directed edges, counting parallels.
func (g *Graph) EdgeCount() int { return g.edgeCount }
