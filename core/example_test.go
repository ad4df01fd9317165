package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvheat/core"
)

// ExampleGraph assembles a one-layer wall between room and outdoor air.
func ExampleGraph() {
	g := core.NewGraph()
	outside := core.NewFixed("outside", core.AirBulkMixed, 10, 1, core.Constant(273.15))
	wall := core.NewFree("wall", core.Styrofoam, 0.1, 1).MustSetTemperature(290)
	room := core.NewSource("room", core.AirBulkMixed, 2.5, 1, core.ConstantHeat(100))

	for _, v := range []*core.Vertex{outside, wall, room} {
		if _, err := g.AddVertex(v); err != nil {
			fmt.Println(err)
			return
		}
	}
	_, _ = g.Connect(outside, wall, 1)
	_, _ = g.Connect(wall, room, 1)

	s := g.Stats()
	fmt.Printf("vertices=%d edges=%d fixed=%d sources=%d\n", s.VertexCount, s.EdgeCount, s.FixedCount, s.SourceCount)
	fmt.Printf("wall C=%.1f J/K G=%.2f W/K\n", wall.NodeHeatCapacity(), wall.Conductance())
	// Output:
	// vertices=3 edges=2 fixed=1 sources=1
	// wall C=9750.0 J/K G=0.33 W/K
}

// ExampleVertex_SetTemperature shows that boundaries are read-only.
func ExampleVertex_SetTemperature() {
	ground := core.NewFixed("deep soil", core.Soil, 1, 1, core.Constant(286))
	err := ground.SetTemperature(300)
	fmt.Println(err)
	fmt.Println(ground.Temperature())
	// Output:
	// SetTemperature("deep soil"): core: fixed vertex temperature is read-only
	// 286
}

// ExampleLookupMaterial resolves a catalog entry by a loose name.
func ExampleLookupMaterial() {
	m, ok := core.LookupMaterial("douglas-fir")
	fmt.Println(ok, m.Name, m.VolumetricHeatCapacity())
	// Output:
	// true Douglas Fir 986000
}
