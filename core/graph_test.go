// Package core_test contains unit tests for Definition validation and the
// read-only Graph accessors, including isolated nodes, parallel edges, and
// idempotent loading.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/routesim/core"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Load must reject malformed definitions, fatally.
// ------------------------------------------------------------------------

func TestLoad_UndeclaredEndpoint(t *testing.T) {
	// "B" is referenced as a destination but never declared as a key.
	def := core.Definition{
		"A": {{To: "B", Cost: 1}},
	}
	_, err := core.Load(def)
	if !errors.Is(err, core.ErrInvalidGraph) {
		t.Fatalf("expected ErrInvalidGraph, got %v", err)
	}
}

func TestLoad_NegativeCost(t *testing.T) {
	def := core.Definition{
		"A": {{To: "B", Cost: -3}},
		"B": {},
	}
	_, err := core.Load(def)
	if !errors.Is(err, core.ErrInvalidGraph) {
		t.Fatalf("expected ErrInvalidGraph for negative cost, got %v", err)
	}
}

func TestLoad_EmptyNodeID(t *testing.T) {
	def := core.Definition{
		"":  {{To: "A", Cost: 1}},
		"A": {},
	}
	_, err := core.Load(def)
	if !errors.Is(err, core.ErrInvalidGraph) {
		t.Fatalf("expected ErrInvalidGraph for empty key, got %v", err)
	}
}

func TestLoad_AccumulatesAllViolations(t *testing.T) {
	// Two independent problems: undeclared endpoint and negative cost.
	// Both must be reported from a single Load call.
	def := core.Definition{
		"A": {{To: "X", Cost: 1}, {To: "A", Cost: -1}},
	}
	_, err := core.Load(def)
	if !errors.Is(err, core.ErrInvalidGraph) {
		t.Fatalf("expected ErrInvalidGraph, got %v", err)
	}
	// multierr renders every accumulated failure in the message.
	msg := err.Error()
	if !containsAll(msg, "undeclared", "negative") {
		t.Errorf("expected both violations in error, got %q", msg)
	}
}

// ------------------------------------------------------------------------
// 2. Accessor Tests: Neighbors, HasNode, Nodes, counts.
// ------------------------------------------------------------------------

func TestGraph_IsolatedNodeHasEmptyNeighbors(t *testing.T) {
	def := core.Definition{
		"A": {{To: "B", Cost: 2}},
		"B": {},
		"E": nil, // isolated node: valid and representable
	}
	g, err := core.Load(def)
	if err != nil {
		t.Fatal(err)
	}

	edges, err := g.Neighbors("E")
	if err != nil {
		t.Fatalf("Neighbors(E) returned error: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("expected no outgoing edges for isolated node, got %v", edges)
	}
}

func TestGraph_UnknownNodeLookup(t *testing.T) {
	g := mustLoad(t, core.Definition{"A": {}})

	_, err := g.Neighbors("Z")
	if !errors.Is(err, core.ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
	if g.HasNode("Z") {
		t.Error("HasNode(Z) = true; want false")
	}
}

func TestGraph_ParallelEdgesPreserved(t *testing.T) {
	// Two parallel edges A→B with different costs must both survive Load
	// in definition order.
	def := core.Definition{
		"A": {{To: "B", Cost: 5}, {To: "B", Cost: 1}},
		"B": {},
	}
	g := mustLoad(t, def)

	edges, err := g.Neighbors("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 2 {
		t.Fatalf("expected 2 parallel edges, got %d", len(edges))
	}
	if edges[0].Cost != 5 || edges[1].Cost != 1 {
		t.Errorf("edge order not preserved: %v", edges)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d; want 2", g.EdgeCount())
	}
}

func TestGraph_NodesSortedAndCopied(t *testing.T) {
	g := mustLoad(t, core.Definition{"C": {}, "A": {}, "B": {}})

	nodes := g.Nodes()
	want := []core.Node{"A", "B", "C"}
	for i, n := range want {
		if nodes[i] != n {
			t.Fatalf("Nodes() = %v; want %v", nodes, want)
		}
	}

	// Mutating the returned slice must not affect the graph.
	nodes[0] = "ZZZ"
	if g.Nodes()[0] != "A" {
		t.Error("Nodes() returned shared storage; graph was mutated")
	}
}

func TestGraph_NeighborsReturnsCopy(t *testing.T) {
	g := mustLoad(t, core.Definition{"A": {{To: "B", Cost: 1}}, "B": {}})

	edges, _ := g.Neighbors("A")
	edges[0].Cost = 999
	again, _ := g.Neighbors("A")
	if again[0].Cost != 1 {
		t.Error("Neighbors() returned shared storage; graph was mutated")
	}
}

// ------------------------------------------------------------------------
// 3. Idempotent Load: loading the same definition twice is equivalent.
// ------------------------------------------------------------------------

func TestLoad_Idempotent(t *testing.T) {
	def := core.Definition{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 2}},
		"B": {{To: "A", Cost: 1}},
		"C": {},
	}
	g1 := mustLoad(t, def)
	g2 := mustLoad(t, def)

	if g1.NodeCount() != g2.NodeCount() || g1.EdgeCount() != g2.EdgeCount() {
		t.Fatal("two loads of the same definition disagree on counts")
	}
	for _, n := range g1.Nodes() {
		e1, _ := g1.Neighbors(n)
		e2, _ := g2.Neighbors(n)
		if len(e1) != len(e2) {
			t.Fatalf("neighbor lists of %q differ between loads", n)
		}
		for i := range e1 {
			if e1[i] != e2[i] {
				t.Fatalf("edge %d of %q differs between loads: %v vs %v", i, n, e1[i], e2[i])
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Test helpers.
// ------------------------------------------------------------------------

func mustLoad(t *testing.T, def core.Definition) *core.Graph {
	t.Helper()
	g, err := core.Load(def)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	return g
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		found := false
		for i := 0; i+len(sub) <= len(s); i++ {
			if s[i:i+len(sub)] == sub {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
