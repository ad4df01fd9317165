package simulate_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/simulate"
)

// benchChain builds a Fixed boundary, n Free slab nodes and a Source.
func benchChain(n int) *core.Graph {
	g := core.NewGraph(core.WithCapacity(n+2, n+1))
	prev := core.NewFixed("cold", core.Concrete, 0.1, 1, core.Constant(273))
	_, _ = g.AddVertex(prev)
	for i := 0; i < n; i++ {
		v := core.NewFree(fmt.Sprintf("n%d", i), core.Concrete, 0.1, 1)
		_, _ = g.AddVertex(v)
		_, _ = g.Connect(prev, v, 1)
		prev = v
	}
	src := core.NewSource("hot", core.Concrete, 0.1, 1, core.ConstantHeat(100))
	_, _ = g.AddVertex(src)
	_, _ = g.Connect(prev, src, 1)

	return g
}

func BenchmarkStep(b *testing.B) {
	for _, n := range []int{100, 10000} {
		for _, w := range []int{1, 4} {
			b.Run(fmt.Sprintf("nodes=%d/workers=%d", n, w), func(b *testing.B) {
				st, err := simulate.NewStepper(benchChain(n), 1, simulate.WithWorkers(w))
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := st.Step(1); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
