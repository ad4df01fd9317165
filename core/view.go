// File: view.go
// Role: Read-only compiled view of the topology (arena indices + incidence links).
//
// Determinism:
//   - Links[id] lists incident edges in insertion order.
//
// Concurrency:
//   - Built under the read lock; the result shares *Vertex pointers with the
//     graph but none of its internal slices.

package core

// Link is one incident conduction path as seen from a vertex.
type Link struct {
	// Other is the opposite endpoint (equal to the owner for a loop).
	Other VertexID
	// Area is the edge's conduction area, m².
	Area float64
	// Loop marks a self-loop; loops carry no flux.
	Loop bool
}

// Topology is an immutable snapshot of the graph structure.
//
// Vertices[id] is the vertex with VertexID id and Links[id] its incidence.
// Solvers compile a Topology once and then work on index arrays only.
type Topology struct {
	Vertices []*Vertex
	Links    [][]Link
}

// Topology returns a compiled snapshot of the current structure.
//
// Implementation:
//   - Stage 1: Copy the vertex arena.
//   - Stage 2: For every vertex walk its incidence and resolve the other endpoint.
//
// Complexity: O(V + E) time and space.
func (g *Graph) Topology() *Topology {
	g.mu.RLock()
	defer g.mu.RUnlock()

	t := &Topology{
		Vertices: make([]*Vertex, len(g.vertices)),
		Links:    make([][]Link, len(g.vertices)),
	}
	copy(t.Vertices, g.vertices)

	for id := range g.vertices {
		self := VertexID(id)
		links := make([]Link, 0, len(g.incidence[id]))
		for _, pos := range g.incidence[id] {
			ends := g.ends[pos]
			other := ends.a
			if other == self {
				other = ends.b
			}
			links = append(links, Link{Other: other, Area: g.edges[pos].Area, Loop: ends.a == ends.b})
		}
		t.Links[id] = links
	}

	return t
}

// Len returns the number of vertices in the snapshot.
func (t *Topology) Len() int { return len(t.Vertices) }

// LinkConductance returns the conductance, W/K, of a link of the given area
// as seen from self: the two half-thicknesses conduct in series, giving
// effectiveK = hs / (ho/ko + hs/ks) over the path length hs.
// Algebraically this is area / (hs/ks + ho/ko), so both directions agree up
// to rounding.
func LinkConductance(self, other *Vertex, area float64) float64 {
	hs := self.HalfThickness()
	effectiveK := hs / (other.HalfThickness()/other.Material().K + hs/self.Material().K)

	return effectiveK * area / hs
}
