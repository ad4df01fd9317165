// Package bfs provides breadth-first search over a thermal core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence (VertexIDs)
//   - Depth: VertexID → hops from start
//   - Parent: VertexID → predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual links via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - WithStopAtFixed treats Fixed vertices as walls: they are reached but
//     not expanded, so regions coupled only through a boundary stay apart.
//
// Why
//
//   - Find the region a heat source can reach and how many nodes deep.
//   - Discover connected components and isolated islands (package inspect).
//   - Hop distance from a boundary is a cheap proxy for thermal lag.
//
// Determinism
//
//	Neighbors are enqueued in link insertion order (core.Topology), so the
//	visit sequence is fully reproducible for a given assembly order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and link seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, furnace,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithStopAtFixed(),
//	    bfs.WithOnVisit(func(v *core.Vertex, depth int) error { return nil }),
//	)
//
//	topo := g.Topology()      // compile once
//	res, err = bfs.Walk(topo, 0) // then search by VertexID
//
// Errors
//
//   - ErrGraphNil             if the graph or topology is nil.
//   - ErrStartVertexNotFound  if the start vertex is not a member.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
