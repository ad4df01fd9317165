// File: types.go
// Role: Central Vertex, Edge and Graph types of the thermal network.
//
// The Graph is an arena: every vertex receives a stable integer VertexID at
// insertion, edges are kept in an append-only list, and an incidence index
// (VertexID → edge positions) is maintained as edges are added. Only vertex
// temperatures change after assembly.
//
// This file declares Kind, Vertex, Edge, Graph, GraphOption, the functor
// types and the sentinel errors.
//
// Errors:
//
//	ErrNilVertex      - vertex pointer is nil.
//	ErrNilEdge        - edge pointer is nil.
//	ErrVertexNotFound - vertex is not a member of the graph.
//	ErrEdgeNotFound   - edge is not a member of the graph.
//	ErrEdgeExists     - the same *Edge was already added.
//	ErrFixedVertex    - attempt to set the temperature of a Fixed vertex.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a nil *Vertex was passed.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrNilEdge indicates that a nil *Edge was passed.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrVertexNotFound indicates an operation referenced a vertex outside the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge outside the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates the same *Edge value was added twice.
	// Parallel edges are allowed, but each needs its own *Edge.
	ErrEdgeExists = errors.New("core: edge already added")

	// ErrFixedVertex indicates a mutation attempt on a Fixed (boundary) vertex.
	ErrFixedVertex = errors.New("core: fixed vertex temperature is read-only")
)

// Kind tags the three vertex variants.
type Kind uint8

const (
	// Free vertices evolve from neighbor conduction only.
	Free Kind = iota
	// Fixed vertices report an externally imposed temperature (Dirichlet boundary).
	Fixed
	// Source vertices are Free vertices with an internal heat-generation term.
	Source
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Free:
		return "free"
	case Fixed:
		return "fixed"
	case Source:
		return "source"
	default:
		return "unknown"
	}
}

// TemperatureFunc supplies the current temperature (K) of a Fixed vertex.
// It is invoked once per read; it receives no simulated time.
type TemperatureFunc func() float64

// HeatFunc supplies the heat generated inside a Source vertex (W).
// The simulator invokes it once per step.
type HeatFunc func() float64

// VertexID is the stable arena index of a vertex inside one Graph.
type VertexID int

// Vertex is one lumped thermal node.
//
// Geometry and material are fixed at construction. Free and Source vertices
// own their temperature; Fixed vertices forward every read to their
// TemperatureFunc. Use NewFree, NewFixed or NewSource to build one.
type Vertex struct {
	name      string
	kind      Kind
	material  Material
	thickness float64 // m
	area      float64 // m², used for volume and conductance only

	temperature     float64 // K, current step
	nextTemperature float64 // K, scratch inside one step

	temperatureFn TemperatureFunc // Fixed only
	heatFn        HeatFunc        // Source only
}

// Edge is a conduction path of the given cross-sectional area.
// Its endpoints are recorded by the Graph it is added to.
type Edge struct {
	// Area is the conduction area between the two vertices, m².
	Area float64
}

// NewEdge returns an edge with the given conduction area.
func NewEdge(area float64) *Edge {
	return &Edge{Area: area}
}

// endpoints is the unordered pair recorded for one edge.
type endpoints struct {
	a, b VertexID
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates the vertex and edge catalogs.
// Negative hints are ignored.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make([]*Vertex, 0, vertices)
			g.incidence = make([][]int, 0, vertices)
			g.index = make(map[*Vertex]VertexID, vertices)
		}
		if edges > 0 {
			g.edges = make([]*Edge, 0, edges)
			g.ends = make([]endpoints, 0, edges)
			g.edgeIndex = make(map[*Edge]int, edges)
		}
	}
}

// Graph is an undirected multigraph of thermal vertices.
//
// Self-loops and parallel edges are always permitted. mu guards the catalogs;
// vertex temperatures are not guarded and belong to whoever runs the
// simulation (one run owns one graph).
type Graph struct {
	mu sync.RWMutex

	// Vertex arena: vertices[id], incidence[id] lists positions in edges.
	vertices  []*Vertex
	incidence [][]int
	index     map[*Vertex]VertexID

	// Edge list: edges[i] connects ends[i].a and ends[i].b.
	edges     []*Edge
	ends      []endpoints
	edgeIndex map[*Edge]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:     make(map[*Vertex]VertexID),
		edgeIndex: make(map[*Edge]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
