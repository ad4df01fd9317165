package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/simulate"
)

// ExampleRun heats an isolated 1 m³ block with 50 W for 100 s.
func ExampleRun() {
	g := core.NewGraph()
	block := core.NewSource("block", core.ForTesting, 1, 1, core.ConstantHeat(50))
	_, _ = g.AddVertex(block)

	if err := simulate.Run(g, 1, 100); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f K\n", block.Temperature())
	// Output:
	// 0.050 K
}

// ExampleStepper drives a heater from an outer loop between step batches.
func ExampleStepper() {
	on := true
	g := core.NewGraph()
	room := core.NewSource("room", core.ForTesting, 1, 1, func() float64 {
		if on {
			return 1000
		}
		return 0
	})
	_, _ = g.AddVertex(room)

	st, _ := simulate.NewStepper(g, 1)
	for cycle := 0; cycle < 4; cycle++ {
		_ = st.Step(10)
		on = room.Temperature() < 0.15
	}
	fmt.Printf("%.2f K after %.0f s\n", room.Temperature(), st.Elapsed())
	// Output:
	// 0.20 K after 40 s
}
