// Package bfs provides breadth-first search over a thermal core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop count from a start vertex,
// with optional hooks, depth limiting, neighbor filtering and a switch that
// stops the walk at Fixed boundaries.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvheat/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	topo    *core.Topology
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	start   core.VertexID
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// BFS compiles a fresh Topology; callers running many searches over one
// graph should compile once and use Walk.
func BFS(g *core.Graph, start *core.Vertex, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	id, err := g.VertexID(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	return Walk(g.Topology(), id, opts...)
}

// Walk is BFS over an already compiled Topology from the vertex with id start.
func Walk(t *core.Topology, start core.VertexID, opts ...Option) (*BFSResult, error) {
	if t == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := t.Len()
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: id %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		topo:    t,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		start:   start,
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, start)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if id != w.start {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(w.topo.Vertices[id], d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if !w.opts.ThroughFixed && item.id != w.start && w.topo.Vertices[item.id].Kind() == core.Fixed {
			continue
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.topo.Vertices[item.id], item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	v := w.topo.Vertices[item.id]
	if err := w.opts.OnVisit(v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", v.Name(), err)
	}
	return nil
}

// enqueueNeighbors walks the links of item in insertion order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor. Self-loops
// and repeated parallel links are no-ops because the target is visited.
func (w *walker) enqueueNeighbors(item queueItem) {
	curr := w.topo.Vertices[item.id]
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, l := range w.topo.Links[item.id] {
		if l.Loop || w.visited[l.Other] {
			continue
		}
		if !w.opts.FilterNeighbor(curr, w.topo.Vertices[l.Other]) {
			continue
		}
		w.enqueue(l.Other, nextDepth, item.id)
	}
}
