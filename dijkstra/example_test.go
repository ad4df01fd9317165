package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/dijkstra"
)

// ExampleDijkstra finds that heat through a framed wall takes the stud, not
// the foam beside it.
func ExampleDijkstra() {
	out := core.NewFixed("outside", core.AirBulkMixed, 10, 10, core.Constant(273))
	in := core.NewFixed("room", core.AirBulkMixed, 10, 10, core.Constant(293))
	g, err := builder.BuildGraph(nil, nil, builder.Layers(out, in, 10, builder.StudWall()...))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("outside"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	src, _ := g.VertexID(out)
	dst, _ := g.VertexID(in)
	path, _ := dijkstra.PathTo(prev, src, dst)
	for _, id := range path {
		v, _ := g.VertexAt(id)
		fmt.Println(v.Name())
	}
	fmt.Printf("R = %.3f K/W\n", dist[dst])
	// Output:
	// outside
	// sheathing
	// wall stud
	// wall paneling
	// room
	// R = 0.340 K/W
}
