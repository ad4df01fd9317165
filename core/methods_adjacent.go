// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, Degree).
//
// Determinism:
//   - Neighbors() returns unique neighbors ordered by VertexID.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the distinct vertices sharing at least one edge with v,
// ordered by VertexID. Self-loops do not make v its own neighbor.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(v *Vertex) ([]*Vertex, error) {
	if v == nil {
		return nil, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	self, ok := g.index[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", v.name, ErrVertexNotFound)
	}

	seen := make(map[VertexID]struct{}, len(g.incidence[self]))
	ids := make([]VertexID, 0, len(g.incidence[self]))
	for _, pos := range g.incidence[self] {
		ends := g.ends[pos]
		other := ends.a
		if other == self {
			other = ends.b
		}
		if other == self {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*Vertex, len(ids))
	for i, id := range ids {
		out[i] = g.vertices[id]
	}

	return out, nil
}

// Degree returns the number of incident edges of v. Parallel edges count
// individually; a self-loop counts once.
func (g *Graph) Degree(v *Vertex) (int, error) {
	if v == nil {
		return 0, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", v.name, ErrVertexNotFound)
	}

	return len(g.incidence[id]), nil
}
