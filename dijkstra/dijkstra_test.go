// Package dijkstra_test covers validation, parallel-edge merging, Fixed
// vertices as path ends, the resistance cap and path reconstruction.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/dijkstra"
)

// unit builds ForTesting vertices (thickness 1) named by names; a link of
// area a between two of them has resistance 1/a K/W. Names starting with
// '!' become Fixed vertices at 300 K (without the '!').
func unit(t *testing.T, names ...string) (*core.Graph, map[string]*core.Vertex) {
	t.Helper()
	g := core.NewGraph()
	vs := make(map[string]*core.Vertex, len(names))
	for _, n := range names {
		var v *core.Vertex
		if n[0] == '!' {
			n = n[1:]
			v = core.NewFixed(n, core.ForTesting, 1, 1, core.Constant(300))
		} else {
			v = core.NewFree(n, core.ForTesting, 1, 1)
		}
		if _, err := g.AddVertex(v); err != nil {
			t.Fatal(err)
		}
		vs[n] = v
	}
	return g, vs
}

func link(t *testing.T, g *core.Graph, a, b *core.Vertex, area float64) {
	t.Helper()
	if _, err := g.Connect(a, b, area); err != nil {
		t.Fatal(err)
	}
}

func id(t *testing.T, g *core.Graph, v *core.Vertex) core.VertexID {
	t.Helper()
	i, err := g.VertexID(v)
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g, _ := unit(t, "A")
	if _, _, err := dijkstra.Dijkstra(g); err != dijkstra.ErrEmptySource {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("A")); err != dijkstra.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Z")); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeConductance(t *testing.T) {
	g, vs := unit(t, "A", "B")
	link(t, g, vs["A"], vs["B"], -1)
	if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A")); !errors.Is(err, dijkstra.ErrBadConductance) {
		t.Fatalf("expected ErrBadConductance, got %v", err)
	}
}

func TestWithMaxResistance_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a negative cap")
		}
	}()
	dijkstra.WithMaxResistance(-1)
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// A–B 1 K/W, B–C 1 K/W, A–C 4 K/W: C is best reached through B.
	g, vs := unit(t, "A", "B", "C")
	link(t, g, vs["A"], vs["B"], 1)
	link(t, g, vs["B"], vs["C"], 1)
	link(t, g, vs["A"], vs["C"], 0.25)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Fatal("prev must be nil without WithReturnPath")
	}
	c := id(t, g, vs["C"])
	if !near(dist[c], 2) {
		t.Fatalf("dist[C] = %g, want 2", dist[c])
	}
	if dist[id(t, g, vs["A"])] != 0 {
		t.Fatal("source distance must be 0")
	}
}

func TestDijkstra_ParallelEdgesMerge(t *testing.T) {
	// A second A–C edge of area 0.75 brings A–C to 1 W/K, i.e. 1 K/W.
	g, vs := unit(t, "A", "B", "C")
	link(t, g, vs["A"], vs["B"], 1)
	link(t, g, vs["B"], vs["C"], 1)
	link(t, g, vs["A"], vs["C"], 0.25)
	link(t, g, vs["C"], vs["A"], 0.75)
	link(t, g, vs["C"], vs["C"], 5) // loop, ignored

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	c := id(t, g, vs["C"])
	if !near(dist[c], 1) {
		t.Fatalf("dist[C] = %g, want 1", dist[c])
	}
	if prev[c] != id(t, g, vs["A"]) {
		t.Fatalf("prev[C] = %d, want A", prev[c])
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g, vs := unit(t, "A", "B", "C", "D")
	link(t, g, vs["A"], vs["B"], 1)
	link(t, g, vs["C"], vs["D"], 1)
	link(t, g, vs["B"], vs["C"], 0) // carries no heat

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"C", "D"} {
		v := id(t, g, vs[n])
		if !math.IsInf(dist[v], 1) {
			t.Fatalf("dist[%s] = %g, want +Inf", n, dist[v])
		}
		if prev[v] != dijkstra.NoVertex {
			t.Fatalf("prev[%s] = %d, want NoVertex", n, prev[v])
		}
	}
}

func TestDijkstra_FixedEndsPaths(t *testing.T) {
	// X – F(fixed) – Y: Y is behind a boundary.
	g, vs := unit(t, "X", "!F", "Y")
	link(t, g, vs["X"], vs["F"], 1)
	link(t, g, vs["F"], vs["Y"], 1)
	y := id(t, g, vs["Y"])

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	if err != nil {
		t.Fatal(err)
	}
	if !near(dist[id(t, g, vs["F"])], 1) || !math.IsInf(dist[y], 1) {
		t.Fatalf("default: dist[F]=%g dist[Y]=%g", dist[id(t, g, vs["F"])], dist[y])
	}

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithThroughFixed())
	if err != nil {
		t.Fatal(err)
	}
	if !near(dist[y], 2) {
		t.Fatalf("through fixed: dist[Y] = %g, want 2", dist[y])
	}

	// A Fixed source is always expanded.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("F"))
	if err != nil {
		t.Fatal(err)
	}
	if !near(dist[y], 1) {
		t.Fatalf("fixed source: dist[Y] = %g, want 1", dist[y])
	}
}

func TestDijkstra_MaxResistance(t *testing.T) {
	g, vs := unit(t, "A", "B", "C", "D")
	link(t, g, vs["A"], vs["B"], 1)
	link(t, g, vs["B"], vs["C"], 1)
	link(t, g, vs["C"], vs["D"], 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxResistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if !near(dist[id(t, g, vs["C"])], 2) {
		t.Fatalf("dist[C] = %g, want 2", dist[id(t, g, vs["C"])])
	}
	if !math.IsInf(dist[id(t, g, vs["D"])], 1) {
		t.Fatalf("dist[D] = %g, want +Inf beyond the cap", dist[id(t, g, vs["D"])])
	}
}

// ------------------------------------------------------------------------
// 3. Paths
// ------------------------------------------------------------------------

func TestPathTo(t *testing.T) {
	g, vs := unit(t, "A", "B", "C", "D", "E")
	link(t, g, vs["A"], vs["B"], 1)
	link(t, g, vs["B"], vs["C"], 1)
	link(t, g, vs["A"], vs["C"], 0.25)
	link(t, g, vs["C"], vs["D"], 2)

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	a, d := id(t, g, vs["A"]), id(t, g, vs["D"])
	path, err := dijkstra.PathTo(prev, a, d)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.VertexID{a, id(t, g, vs["B"]), id(t, g, vs["C"]), d}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("path = %v, want %v", path, want)
	}

	self, err := dijkstra.PathTo(prev, a, a)
	if err != nil || !reflect.DeepEqual(self, []core.VertexID{a}) {
		t.Fatalf("path to self = %v, %v", self, err)
	}
	if _, err := dijkstra.PathTo(prev, a, id(t, g, vs["E"])); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}
