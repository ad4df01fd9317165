// Package dijkstra finds chains of least thermal resistance in a thermal
// graph: the routes along which a temperature difference drives the most
// heat, such as a stud bridging an insulated wall.
//
// Overview:
//
//   - Each link weighs R = 1/G, K/W, with G = core.LinkConductance over the
//     edge area; parallel edges between one pair merge first (G adds).
//   - Dijkstra returns the series resistance of the best chain from a source
//     to every vertex, and optionally the predecessor map; PathTo rebuilds a
//     chain from it.
//   - Fixed vertices end paths unless WithThroughFixed is given: a boundary
//     pins its temperature, so heat does not flow on through it.
//
// The best chain bounds the heat flow between its ends from below: the real
// network conducts at least ΔT/R along it, and more through every other
// route. inspect.ThermalBridge uses it to name the weakest spot of an
// envelope.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (
//	    dist map[core.VertexID]float64, prev map[core.VertexID]core.VertexID, err error)
//	func PathTo(prev map[core.VertexID]core.VertexID, source, target core.VertexID) ([]core.VertexID, error)
//
//	  - opts:
//	      • Source(name):              required, the starting vertex name.
//	      • WithReturnPath():          return the predecessor map; otherwise prev == nil.
//	      • WithMaxResistance(K/W):    explore only chains up to this resistance.
//	      • WithThroughFixed():        continue through Fixed vertices.
//	  - dist[v] is +Inf when v is unreachable.
//	  - prev[v] is NoVertex for the source and unreached vertices.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
//
// Thread safety: Dijkstra compiles the topology once under the graph's read
// lock and then works on its own copy; it reads no temperatures.
package dijkstra
