// Package core provides the data model of a lumped thermal network: materials,
// the three vertex variants, conduction edges, and the Graph container that
// the simulators read.
//
// The network G = (V,E) is an undirected multigraph:
//
//   - Free vertices evolve from neighbor conduction only.
//   - Source vertices add an injected heat generation (HeatFunc, W).
//   - Fixed vertices are Dirichlet boundaries: their temperature is always the
//     output of a TemperatureFunc, and setters return ErrFixedVertex.
//   - Parallel edges add (their areas act in parallel); self-loops are legal
//     and carry no flux.
//
// Storage is an arena: each vertex gets a stable VertexID on insertion, edges
// live in an append-only list, and an incidence index maps VertexID → edges.
// Topology() compiles this into index arrays for solvers, so time stepping is
// a plain array scan.
//
// Derived quantities per vertex:
//
//	Volume           = area · thickness                 m³
//	NodeHeatCapacity = ρ · cp · Volume                  J/K
//	Conductance      = k · area / thickness             W/K
//	HalfThickness    = thickness / 2                    m
//
// Core Methods:
//
//	// Assembly
//	AddVertex(v *Vertex) (added bool, err error)   // O(1), set semantics
//	AddEdge(v0, v1 *Vertex, e *Edge) error         // O(1), loops/parallels allowed
//	Connect(v0, v1 *Vertex, area float64)          // NewEdge + AddEdge
//
//	// Query
//	EdgesOf(v) ([]*Edge, error)                    // incident edges, loop once
//	EdgeSource(e), EdgeTarget(e)                   // unordered endpoints
//	Vertices() []*Vertex                           // snapshot, VertexID order
//	Neighbors(v), Degree(v), Lookup(name), Stats()
//	Topology() *Topology                           // compiled incidence
//	Clone() (*Graph, map[*Vertex]*Vertex)          // deep copy
//
// Physical inputs are never validated: non-positive thickness, area or
// conductivity produce infinities or NaN, which is the caller's problem.
//
// Errors:
//
//	ErrNilVertex, ErrNilEdge, ErrVertexNotFound, ErrEdgeNotFound,
//	ErrEdgeExists, ErrFixedVertex.
package core
