// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a snapshot of catalog sizes and structure classes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int

	FreeCount   int
	FixedCount  int
	SourceCount int

	// LoopCount counts self-loop edges.
	LoopCount int
	// ParallelCount counts edges that repeat an already seen endpoint pair.
	ParallelCount int

	// TotalHeatCapacity sums NodeHeatCapacity over Free and Source vertices, J/K.
	TotalHeatCapacity float64
}

// Stats produces a read-only snapshot of counts by kind, loops, parallel
// edges and the total non-boundary heat capacity.
//
// Implementation:
//   - Stage 1: Under the read lock classify vertices by Kind.
//   - Stage 2: Scan the edge list, keying unordered endpoint pairs.
//
// Complexity:
//   - Time O(V+E), Space O(E) for the pair set.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for _, v := range g.vertices {
		switch v.kind {
		case Free:
			s.FreeCount++
		case Fixed:
			s.FixedCount++
		case Source:
			s.SourceCount++
		}
		if v.kind != Fixed {
			s.TotalHeatCapacity += v.NodeHeatCapacity()
		}
	}

	pairs := make(map[endpoints]struct{}, len(g.ends))
	for _, ends := range g.ends {
		if ends.a == ends.b {
			s.LoopCount++
			continue
		}
		key := ends
		if key.b < key.a {
			key.a, key.b = key.b, key.a
		}
		if _, dup := pairs[key]; dup {
			s.ParallelCount++
			continue
		}
		pairs[key] = struct{}{}
	}

	return &s
}
