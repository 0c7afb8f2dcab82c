// Package shortestpath_test contains unit tests for the point-to-point
// shortest-path engine: validation, path correctness, early exit semantics,
// unreachable destinations, parallel edges, and the MaxCost cap.
package shortestpath_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/shortestpath"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: invalid inputs must fail with the right sentinel.
// ------------------------------------------------------------------------

func TestCompute_NilGraph(t *testing.T) {
	_, err := shortestpath.Compute(nil, "A", "B")
	if !errors.Is(err, shortestpath.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestCompute_UnknownSource(t *testing.T) {
	g := mustLoad(t, core.Definition{"A": {}})
	_, err := shortestpath.Compute(g, "X", "A")
	if !errors.Is(err, core.ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode for missing source, got %v", err)
	}
}

func TestCompute_UnknownDestination(t *testing.T) {
	g := mustLoad(t, core.Definition{"A": {}})
	_, err := shortestpath.Compute(g, "A", "X")
	if !errors.Is(err, core.ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode for missing destination, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Self-route: Compute(s, s) is Found([s], 0) for every node.
// ------------------------------------------------------------------------

func TestCompute_SelfRoute(t *testing.T) {
	g := mustLoad(t, core.Definition{
		"A": {{To: "B", Cost: 4}},
		"B": {},
		"E": nil, // isolated node routes to itself too
	})
	for _, n := range g.Nodes() {
		res, err := shortestpath.Compute(g, n, n)
		if err != nil {
			t.Fatalf("Compute(%s, %s) error: %v", n, n, err)
		}
		if !res.Reachable || res.Cost != 0 {
			t.Errorf("Compute(%s, %s) = %+v; want Found([%s], 0)", n, n, res, n)
		}
		if len(res.Path) != 1 || res.Path[0] != n {
			t.Errorf("self-route path = %v; want [%s]", res.Path, n)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Path correctness on the reference seven-node ring graph.
// ------------------------------------------------------------------------

// sevenNodeGraph is the bidirectional seven-node topology used across the
// test suite: two lobes joined through C—F and the D—E—G chain.
func sevenNodeGraph(t *testing.T) *core.Graph {
	t.Helper()

	return mustLoad(t, core.Definition{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 2}},
		"B": {{To: "A", Cost: 1}, {To: "D", Cost: 2}},
		"C": {{To: "A", Cost: 2}, {To: "F", Cost: 3}},
		"D": {{To: "B", Cost: 2}, {To: "E", Cost: 2}},
		"E": {{To: "D", Cost: 2}, {To: "G", Cost: 3}},
		"F": {{To: "C", Cost: 3}, {To: "G", Cost: 1}},
		"G": {{To: "F", Cost: 1}, {To: "E", Cost: 3}},
	})
}

func TestCompute_SevenNodeGraph_AtoG(t *testing.T) {
	g := sevenNodeGraph(t)

	res, err := shortestpath.Compute(g, "A", "G")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reachable {
		t.Fatal("expected A→G reachable")
	}
	if res.Cost != 6 {
		t.Errorf("cost = %g; want 6", res.Cost)
	}
	assertPath(t, res.Path, "A", "C", "F", "G")
}

func TestCompute_SevenNodeGraph_AllPairsSymmetric(t *testing.T) {
	// Every edge has a mirror with equal cost, so dist(u,v) == dist(v,u).
	g := sevenNodeGraph(t)
	nodes := g.Nodes()
	for _, u := range nodes {
		for _, v := range nodes {
			fwd, err := shortestpath.Compute(g, u, v)
			if err != nil {
				t.Fatal(err)
			}
			rev, err := shortestpath.Compute(g, v, u)
			if err != nil {
				t.Fatal(err)
			}
			if fwd.Cost != rev.Cost {
				t.Errorf("dist(%s,%s) = %g but dist(%s,%s) = %g", u, v, fwd.Cost, v, u, rev.Cost)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Unreachable destinations: NotFound outcome, not an error.
// ------------------------------------------------------------------------

func TestCompute_DisconnectedComponents(t *testing.T) {
	// Component 1: A—C—F—G. Component 2: B—D. Isolated: E.
	g := mustLoad(t, core.Definition{
		"A": {{To: "C", Cost: 2}},
		"C": {{To: "A", Cost: 2}, {To: "F", Cost: 2}},
		"F": {{To: "C", Cost: 2}, {To: "G", Cost: 1}},
		"G": {{To: "F", Cost: 1}},
		"B": {{To: "D", Cost: 2}},
		"D": {{To: "B", Cost: 2}},
		"E": {},
	})

	res, err := shortestpath.Compute(g, "A", "B")
	if err != nil {
		t.Fatalf("unreachable destination must not be an error, got %v", err)
	}
	if res.Reachable {
		t.Errorf("expected NotFound for A→B across components, got %+v", res)
	}
	if !math.IsInf(res.Cost, 1) {
		t.Errorf("unreachable cost = %g; want +Inf", res.Cost)
	}
	if res.Path != nil {
		t.Errorf("unreachable path = %v; want nil", res.Path)
	}
}

func TestCompute_IsolatedDestination(t *testing.T) {
	g := mustLoad(t, core.Definition{
		"A": {{To: "B", Cost: 1}},
		"B": {},
		"E": nil,
	})
	res, err := shortestpath.Compute(g, "A", "E")
	if err != nil {
		t.Fatal(err)
	}
	if res.Reachable {
		t.Errorf("expected isolated node unreachable, got %+v", res)
	}
}

func TestCompute_OneWayEdgeNotWalkedBackward(t *testing.T) {
	// A→B only; B cannot reach A.
	g := mustLoad(t, core.Definition{
		"A": {{To: "B", Cost: 1}},
		"B": {},
	})
	res, err := shortestpath.Compute(g, "B", "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Reachable {
		t.Error("directed edge was traversed backward")
	}
}

// ------------------------------------------------------------------------
// 5. Parallel edges and stale-entry tolerance.
// ------------------------------------------------------------------------

func TestCompute_ParallelEdgesCheapestWins(t *testing.T) {
	g := mustLoad(t, core.Definition{
		"A": {{To: "B", Cost: 5}, {To: "B", Cost: 1}, {To: "B", Cost: 3}},
		"B": {},
	})
	res, err := shortestpath.Compute(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 1 {
		t.Errorf("cost = %g; want 1 (cheapest of three parallel edges)", res.Cost)
	}
}

func TestCompute_StaleEntriesDiscarded(t *testing.T) {
	// B is first reached at cost 10 (direct), then improved to 3 via C. The
	// cost-10 queue entry goes stale and must be skipped on pop, and the
	// final path must follow the improvement.
	g := mustLoad(t, core.Definition{
		"A": {{To: "B", Cost: 10}, {To: "C", Cost: 1}},
		"C": {{To: "B", Cost: 2}},
		"B": {{To: "D", Cost: 1}},
		"D": {},
	})
	res, err := shortestpath.Compute(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 4 {
		t.Errorf("cost = %g; want 4 (via the improved route)", res.Cost)
	}
	assertPath(t, res.Path, "A", "C", "B", "D")
}

func TestCompute_EqualCostPathsReportExactDistance(t *testing.T) {
	// Two distinct cost-2 routes A→B→D and A→C→D. Which path is reported
	// depends on heap tie order and is unspecified; the cost is exact.
	g := mustLoad(t, core.Definition{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 1}},
		"B": {{To: "D", Cost: 1}},
		"C": {{To: "D", Cost: 1}},
		"D": {},
	})
	res, err := shortestpath.Compute(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 2 {
		t.Errorf("cost = %g; want 2", res.Cost)
	}
	if len(res.Path) != 3 || res.Path[0] != "A" || res.Path[2] != "D" {
		t.Errorf("path = %v; want a 3-node route from A to D", res.Path)
	}
	if mid := res.Path[1]; mid != "B" && mid != "C" {
		t.Errorf("middle node = %s; want B or C", mid)
	}
}

// ------------------------------------------------------------------------
// 6. MaxCost cap.
// ------------------------------------------------------------------------

func TestCompute_MaxCostCapsExploration(t *testing.T) {
	// Chain A→B→C→D with unit costs; cap at 1 leaves C and D unexplored.
	g := mustLoad(t, core.Definition{
		"A": {{To: "B", Cost: 1}},
		"B": {{To: "C", Cost: 1}},
		"C": {{To: "D", Cost: 1}},
		"D": {},
	})

	res, err := shortestpath.Compute(g, "A", "D", shortestpath.WithMaxCost(1))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reachable {
		t.Errorf("expected D beyond MaxCost to be unreachable, got %+v", res)
	}

	within, err := shortestpath.Compute(g, "A", "B", shortestpath.WithMaxCost(1))
	if err != nil {
		t.Fatal(err)
	}
	if !within.Reachable || within.Cost != 1 {
		t.Errorf("B within cap should be found at cost 1, got %+v", within)
	}
}

func TestCompute_NegativeMaxCostPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WithMaxCost(-1) did not panic")
		}
	}()
	shortestpath.WithMaxCost(-1)(&shortestpath.Options{})
}

// ------------------------------------------------------------------------
// 7. Test helpers.
// ------------------------------------------------------------------------

func mustLoad(t *testing.T, def core.Definition) *core.Graph {
	t.Helper()
	g, err := core.Load(def)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	return g
}

func assertPath(t *testing.T, got []core.Node, want ...core.Node) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("path = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v; want %v", got, want)
		}
	}
}
