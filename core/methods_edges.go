// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Connect/EdgesOf/EdgeSource/EdgeTarget/Edges/EdgeCount.
//
// Determinism:
//   - Edges() and EdgesOf() return edges in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
//
// Notes:
//   - Self-loops are stored once in the incidence list of their vertex.
//   - Parallel edges are distinct *Edge values sharing endpoints.

package core

import "fmt"

// AddEdge records e as a conduction path between v0 and v1.
//
// Steps:
//  1. Validate pointers (ErrNilVertex, ErrNilEdge).
//  2. Lock mu; resolve both endpoints (ErrVertexNotFound).
//  3. Reject an *Edge that is already a member (ErrEdgeExists).
//  4. Append to the edge list and to the incidence of each endpoint
//     (once for a self-loop).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v0, v1 *Vertex, e *Edge) error {
	if v0 == nil || v1 == nil {
		return ErrNilVertex
	}
	if e == nil {
		return ErrNilEdge
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	a, ok := g.index[v0]
	if !ok {
		return fmt.Errorf("AddEdge(%q→%q): %q: %w", v0.name, v1.name, v0.name, ErrVertexNotFound)
	}
	b, ok := g.index[v1]
	if !ok {
		return fmt.Errorf("AddEdge(%q→%q): %q: %w", v0.name, v1.name, v1.name, ErrVertexNotFound)
	}
	if _, dup := g.edgeIndex[e]; dup {
		return fmt.Errorf("AddEdge(%q→%q): %w", v0.name, v1.name, ErrEdgeExists)
	}

	pos := len(g.edges)
	g.edges = append(g.edges, e)
	g.ends = append(g.ends, endpoints{a: a, b: b})
	g.edgeIndex[e] = pos
	g.incidence[a] = append(g.incidence[a], pos)
	if a != b {
		g.incidence[b] = append(g.incidence[b], pos)
	}

	return nil
}

// Connect creates an edge of the given area between v0 and v1 and adds it.
func (g *Graph) Connect(v0, v1 *Vertex, area float64) (*Edge, error) {
	e := NewEdge(area)
	if err := g.AddEdge(v0, v1, e); err != nil {
		return nil, err
	}

	return e, nil
}

// EdgesOf returns the edges incident to v, in insertion order.
// A self-loop appears once.
// Complexity: O(deg(v)).
func (g *Graph) EdgesOf(v *Vertex) ([]*Edge, error) {
	if v == nil {
		return nil, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.index[v]
	if !ok {
		return nil, fmt.Errorf("EdgesOf(%q): %w", v.name, ErrVertexNotFound)
	}
	out := make([]*Edge, 0, len(g.incidence[id]))
	for _, pos := range g.incidence[id] {
		out = append(out, g.edges[pos])
	}

	return out, nil
}

// EdgeSource returns the first endpoint recorded for e.
// The pair is unordered; "source" is only the argument order of AddEdge.
func (g *Graph) EdgeSource(e *Edge) (*Vertex, error) {
	ends, err := g.endsOf(e)
	if err != nil {
		return nil, fmt.Errorf("EdgeSource: %w", err)
	}

	return g.arenaVertex(ends.a), nil
}

// EdgeTarget returns the second endpoint recorded for e.
func (g *Graph) EdgeTarget(e *Edge) (*Vertex, error) {
	ends, err := g.endsOf(e)
	if err != nil {
		return nil, fmt.Errorf("EdgeTarget: %w", err)
	}

	return g.arenaVertex(ends.b), nil
}

// Opposite returns the endpoint of e that is not v; for a self-loop it
// returns v itself and loop == true.
// Returns ErrNilVertex for a nil v and ErrVertexNotFound when v is not an
// endpoint of e.
func (g *Graph) Opposite(e *Edge, v *Vertex) (other *Vertex, loop bool, err error) {
	ends, err := g.endsOf(e)
	if err != nil {
		return nil, false, fmt.Errorf("Opposite: %w", err)
	}
	src, dst := g.arenaVertex(ends.a), g.arenaVertex(ends.b)
	if v == nil {
		return nil, false, fmt.Errorf("Opposite: %w", ErrNilVertex)
	}
	if v != src && v != dst {
		return nil, false, fmt.Errorf("Opposite(%q): not an endpoint: %w", v.Name(), ErrVertexNotFound)
	}
	if v == src {
		return dst, src == dst, nil
	}

	return src, false, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E| (parallel edges and loops counted individually).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// endsOf resolves the endpoints of e under the read lock.
func (g *Graph) endsOf(e *Edge) (endpoints, error) {
	if e == nil {
		return endpoints{}, ErrNilEdge
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.edgeIndex[e]
	if !ok {
		return endpoints{}, ErrEdgeNotFound
	}

	return g.ends[pos], nil
}

// arenaVertex reads the arena; ids handed out by the graph are always valid
// because vertices are never removed.
func (g *Graph) arenaVertex(id VertexID) *Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[id]
}
