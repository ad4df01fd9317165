// File: dijkstra.go
// Role: Least-resistance search, path reconstruction and the heap.
//
// Notes on implementation choices:
//
//   - The topology is compiled once and every link resistance is computed in
//     an upfront O(E) pass that also rejects negative or NaN conductances.
//   - Zero-conductance links carry no heat and are skipped.
//   - A lazy decrease-key heap: improved distances are pushed again and stale
//     entries are ignored when popped.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvheat/core"
)

// Dijkstra computes, for every vertex of g, the least series resistance
// (K/W) of a chain of links from Options.Source.
//
// Returns:
//
//   - dist: vertex id → resistance; +Inf if unreachable or beyond MaxResistance.
//   - prev: predecessor map when WithReturnPath is set (nil otherwise);
//     prev[v] == NoVertex for the source and unreached vertices.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound or ErrBadConductance.
//
// Validation order:
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain a vertex named Source (ErrVertexNotFound).
//  4. No link may have a negative or NaN conductance (ErrBadConductance).
func Dijkstra(g *core.Graph, opts ...Option) (map[core.VertexID]float64, map[core.VertexID]core.VertexID, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	src, ok := g.Lookup(cfg.Source)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	source, err := g.VertexID(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, err)
	}

	t := g.Topology()
	adj, err := resistances(t)
	if err != nil {
		return nil, nil, err
	}

	r := &runner{
		topo:    t,
		options: cfg,
		adj:     adj,
		dist:    make([]float64, t.Len()),
		prev:    make([]core.VertexID, t.Len()),
		visited: make([]bool, t.Len()),
		pq:      make(nodePQ, 0, t.Len()),
	}
	r.init(source)
	r.process(source)

	dist := make(map[core.VertexID]float64, t.Len())
	for id, d := range r.dist {
		dist[core.VertexID(id)] = d
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[core.VertexID]core.VertexID, t.Len())
	for id, p := range r.prev {
		prev[core.VertexID(id)] = p
	}

	return dist, prev, nil
}

// PathTo rebuilds the chain source → … → target from a predecessor map.
func PathTo(prev map[core.VertexID]core.VertexID, source, target core.VertexID) ([]core.VertexID, error) {
	if target == source {
		return []core.VertexID{source}, nil
	}
	p, ok := prev[target]
	if !ok || p == NoVertex {
		return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, target)
	}
	path := []core.VertexID{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		if cur == NoVertex || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, target)
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// link is one merged neighbor of a vertex.
type link struct {
	other core.VertexID
	r     float64 // K/W
}

// resistances merges parallel edges (conductances add) and converts each
// neighbor pair to a resistance, in first-seen neighbor order.
func resistances(t *core.Topology) ([][]link, error) {
	adj := make([][]link, t.Len())
	for id, links := range t.Links {
		self := t.Vertices[id]
		pos := make(map[core.VertexID]int, len(links))
		var conductance []float64
		for _, l := range links {
			if l.Loop {
				continue
			}
			c := core.LinkConductance(self, t.Vertices[l.Other], l.Area)
			if c < 0 || math.IsNaN(c) {
				return nil, fmt.Errorf("%w: %q–%q G=%g", ErrBadConductance, self.Name(), t.Vertices[l.Other].Name(), c)
			}
			i, seen := pos[l.Other]
			if !seen {
				i = len(adj[id])
				pos[l.Other] = i
				adj[id] = append(adj[id], link{other: l.Other})
				conductance = append(conductance, 0)
			}
			conductance[i] += c
		}
		for i := range adj[id] {
			adj[id][i].r = 1 / conductance[i]
		}
	}

	return adj, nil
}

// runner holds the mutable state of one run, indexed by VertexID.
type runner struct {
	topo    *core.Topology
	options Options
	adj     [][]link
	dist    []float64
	prev    []core.VertexID
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init(source core.VertexID) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = NoVertex
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the nearest unvisited vertex until the heap is empty or the
// nearest entry lies beyond MaxResistance.
func (r *runner) process(source core.VertexID) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxResistance {
			break
		}
		r.visited[u] = true
		if u != source && !r.options.ThroughFixed && r.topo.Vertices[u].Kind() == core.Fixed {
			continue
		}
		r.relax(u)
	}
}

// relax tries to shorten the distance of every neighbor of u.
func (r *runner) relax(u core.VertexID) {
	for _, l := range r.adj[u] {
		if math.IsInf(l.r, 1) {
			continue
		}
		d := r.dist[u] + l.r
		if d > r.options.MaxResistance || d >= r.dist[l.other] {
			continue
		}
		r.dist[l.other] = d
		r.prev[l.other] = u
		heap.Push(&r.pq, &nodeItem{id: l.other, dist: d})
	}
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   core.VertexID
	dist float64
}

// nodePQ is a min-heap of *nodeItem by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
