// This file implements Compute: validation, the label-setting main loop,
// edge relaxation, and path reconstruction.
package shortestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/pqueue"
)

// Compute returns the minimum-cost path from src to dst in g.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. src must exist in g (core.ErrUnknownNode).
//  3. dst must exist in g (core.ErrUnknownNode).
//
// src == dst is valid and short-circuits to Found([src], 0) without running
// the search. An unreachable dst is not an error: the Result reports
// Reachable == false.
//
// Complexity: O((V + E) log V) worst case, with early exit on settling dst.
func Compute(g *core.Graph, src, dst core.Node, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and both endpoints.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(src) {
		return Result{}, fmt.Errorf("%w: source %q", core.ErrUnknownNode, src)
	}
	if !g.HasNode(dst) {
		return Result{}, fmt.Errorf("%w: destination %q", core.ErrUnknownNode, dst)
	}

	// 3) Trivial self-route: the path is the single node, cost zero.
	if src == dst {
		return Result{Reachable: true, Path: []core.Node{src}, Cost: 0}, nil
	}

	// 4) Run the search and reconstruct the path if dst was reached.
	r := newRunner(g, cfg, src, dst)
	r.search()

	return r.result()
}

// runner holds the mutable state for a single Compute execution.
type runner struct {
	g        *core.Graph
	options  Options
	src, dst core.Node
	dist     map[core.Node]float64   // node → current best distance from src
	prev     map[core.Node]core.Node // node → predecessor on the best path
	pq       *pqueue.Min[float64, core.Node]
}

// newRunner initializes distances (+Inf everywhere except src), the
// predecessor map, and seeds the queue with (0, src).
func newRunner(g *core.Graph, cfg Options, src, dst core.Node) *runner {
	v := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		src:     src,
		dst:     dst,
		dist:    make(map[core.Node]float64, v),
		prev:    make(map[core.Node]core.Node, v),
		pq:      pqueue.NewMin[float64, core.Node](v),
	}
	inf := math.Inf(1)
	for _, n := range g.Nodes() {
		r.dist[n] = inf
	}
	r.dist[src] = 0
	r.pq.Push(0, src)

	return r
}

// search is the main label-setting loop.
//
// Loop termination conditions:
//
//   - dst is popped with its final distance (early exit).
//   - The queue is exhausted (dst unreachable).
//   - The minimum distance in the queue exceeds MaxCost.
func (r *runner) search() {
	for {
		// 1) Pop the smallest-distance entry.
		d, u, ok := r.pq.Pop()
		if !ok {
			return
		}

		// 2) Lazy deletion: a popped distance worse than the node's current
		//    best means this entry was superseded by a later push. Skip it.
		if d > r.dist[u] {
			continue
		}

		// 3) Nothing closer than MaxCost remains; stop exploring.
		if d > r.options.MaxCost {
			return
		}

		// 4) Early exit: dst is settled, its distance is final.
		if u == r.dst {
			return
		}

		// 5) Relax all outgoing edges of u.
		r.relax(u)
	}
}

// relax attempts to improve the tentative distance of every neighbor of u,
// pushing a fresh queue entry for each strict improvement.
//
// Assumes r.dist[u] is final when called.
func (r *runner) relax(u core.Node) {
	// Neighbors cannot fail here: u was popped from the queue, so it exists.
	edges, _ := r.g.Neighbors(u)
	for _, e := range edges {
		candidate := r.dist[u] + e.Cost
		if candidate > r.options.MaxCost {
			continue
		}
		// Strict improvement only; equal-cost alternatives are not re-pushed,
		// so which equally-short path wins depends on heap pop order.
		if candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		r.pq.Push(candidate, e.To)
	}
}

// result reconstructs the src..dst path by walking prev links backward from
// dst, or reports unreachable when dst kept its infinite distance.
func (r *runner) result() (Result, error) {
	total := r.dist[r.dst]
	if math.IsInf(total, 1) {
		return Result{Reachable: false, Cost: total}, nil
	}

	// Walk dst → src, then reverse in place.
	path := []core.Node{r.dst}
	for cur := r.dst; cur != r.src; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Reachable: true, Path: path, Cost: total}, nil
}
