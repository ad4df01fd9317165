// File: methods_clone.go
// Role: Deep copies of a thermal graph.
//
// Determinism:
//   - The clone preserves VertexIDs and edge insertion order.
//
// Notes:
//   - Temperature and heat functors are shared, not copied: a clone of a
//     thermostat-driven source still follows the same switch.

package core

// Clone returns an independent copy of g: fresh Vertex and Edge values with
// the same parameters, current temperatures, functors and topology.
// The second result maps every original vertex to its copy.
//
// Complexity: O(V + E).
func (g *Graph) Clone() (*Graph, map[*Vertex]*Vertex) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacity(len(g.vertices), len(g.edges)))
	mapping := make(map[*Vertex]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		cp := *v
		out.vertices = append(out.vertices, &cp)
		out.incidence = append(out.incidence, append([]int(nil), g.incidence[id]...))
		out.index[&cp] = VertexID(id)
		mapping[v] = &cp
	}
	for pos, e := range g.edges {
		ce := *e
		out.edges = append(out.edges, &ce)
		out.ends = append(out.ends, g.ends[pos])
		out.edgeIndex[&ce] = pos
	}

	return out, mapping
}
