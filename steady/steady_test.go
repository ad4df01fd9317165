package steady_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/simulate"
	"github.com/katalvlaran/lvheat/steady"
)

// divider is a Fixed 0 K sink, split equal wall nodes, and a heated node.
func divider(t *testing.T, split int, power float64) (*core.Graph, []*core.Vertex, *core.Vertex) {
	t.Helper()
	cold := core.NewFixed("cold", core.ForTesting, 0.2, 1, core.Constant(0))
	hot := core.NewSource("hot", core.ForTesting, 0.2, 1, core.ConstantHeat(power))
	g, err := builder.BuildGraph(nil, nil,
		builder.Layers(cold, hot, 1, builder.Layer{Name: "wall", Material: core.ForTesting, Thickness: 1, Split: split}))
	require.NoError(t, err)

	wall := make([]*core.Vertex, 0, split)
	for _, v := range g.Vertices() {
		if v != cold && v != hot {
			wall = append(wall, v)
		}
	}
	return g, wall, hot
}

func TestSolve_ResistiveDivider(t *testing.T) {
	// Total resistance 0.1 + 1 + 0.1 = 1.2 K/W, so 10 W lifts the heater to 12 K.
	g, wall, hot := divider(t, 1, 10)
	sol, err := steady.Solve(g)
	require.NoError(t, err)
	require.Len(t, sol, 2)

	hid, _ := g.VertexID(hot)
	wid, _ := g.VertexID(wall[0])
	assert.InDelta(t, 12, sol[hid], 1e-9)
	assert.InDelta(t, 6, sol[wid], 1e-9)

	g, wall, hot = divider(t, 3, 10)
	sol, err = steady.Solve(g)
	require.NoError(t, err)
	hid, _ = g.VertexID(hot)
	assert.InDelta(t, 12, sol[hid], 1e-9)
	for i, want := range []float64{1 + 10.0/6, 6, 1 + 50.0/6} {
		id, _ := g.VertexID(wall[i])
		assert.InDelta(t, want, sol[id], 1e-9, "wall %d", i)
	}
}

// TestSolve_MatchesLongSimulation checks the transient solver converges to
// the direct solution on a small mesh with two boundaries and a heater.
func TestSolve_MatchesLongSimulation(t *testing.T) {
	west := core.NewFixed("west", core.ForTesting, 0.5, 1, core.Constant(280))
	east := core.NewFixed("east", core.Concrete, 0.5, 1, core.Constant(300))
	heater := core.NewSource("heater", core.Iron, 0.05, 1, core.ConstantHeat(3))
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithInitialTemperature(290)},
		builder.Grid(3, 3, core.ForTesting, 0.5),
	)
	require.NoError(t, err)
	corner, _ := g.Lookup("0,0")
	far, _ := g.Lookup("2,2")
	mid, _ := g.Lookup("1,1")
	require.NoError(t, builder.Apply(g, nil,
		builder.Layers(west, corner, 1, builder.Layer{Name: "w", Material: core.ForTesting, Thickness: 0.5}),
		builder.Layers(far, east, 1, builder.Layer{Name: "e", Material: core.ForTesting, Thickness: 0.5}),
		builder.Layers(mid, heater, 1, builder.Layer{Name: "h", Material: core.ForTesting, Thickness: 0.1}),
	))

	sol, err := steady.Solve(g)
	require.NoError(t, err)

	// The stiffest node (the heater's contact layer) allows about 430 s steps.
	require.NoError(t, simulate.Run(g, 200, 200000))
	for id, want := range sol {
		v, _ := g.VertexAt(id)
		assert.InDelta(t, want, v.Temperature(), 1e-6, v.Name())
	}
}

// TestSolve_EnergyBalance checks that at equilibrium the boundaries absorb
// exactly what the sources generate.
func TestSolve_EnergyBalance(t *testing.T) {
	h, err := builder.SolarHouse(305, core.ConstantHeat(-12000))
	require.NoError(t, err)
	g := h.Graph

	_, err = steady.SolveAndApply(g)
	require.NoError(t, err)

	topo := g.Topology()
	generated, absorbed := 0.0, 0.0
	for id, v := range topo.Vertices {
		if v.Kind() != core.Fixed {
			generated += v.HeatGeneration()
			continue
		}
		for _, l := range topo.Links[id] {
			o := topo.Vertices[l.Other]
			absorbed += core.LinkConductance(o, v, l.Area) * (o.Temperature() - v.Temperature())
		}
	}
	assert.InDelta(t, generated, absorbed, 1e-6*abs(generated))
	// The roof soaks up 200 kW of sun; the interior still stays below the shingles.
	assert.Less(t, h.Interior.Temperature(), h.Roof.Temperature())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestSolve_Islands(t *testing.T) {
	g := core.NewGraph()
	v := core.NewSource("cabin", core.ForTesting, 1, 1, core.ConstantHeat(1))
	_, err := g.AddVertex(v)
	require.NoError(t, err)

	_, err = steady.Solve(g)
	assert.ErrorIs(t, err, steady.ErrSingular)
	assert.Contains(t, err.Error(), `"cabin"`)

	_, err = steady.Solve(nil)
	assert.ErrorIs(t, err, steady.ErrGraphNil)
}

func TestSolve_OnlyBoundaries(t *testing.T) {
	g := core.NewGraph()
	a := core.NewFixed("a", core.ForTesting, 1, 1, core.Constant(1))
	b := core.NewFixed("b", core.ForTesting, 1, 1, core.Constant(2))
	_, _ = g.AddVertex(a)
	_, _ = g.AddVertex(b)
	_, _ = g.Connect(a, b, 1)

	sol, err := steady.Solve(g)
	require.NoError(t, err)
	assert.Empty(t, sol)
}

func TestApply(t *testing.T) {
	g, wall, _ := divider(t, 1, 10)
	wid, _ := g.VertexID(wall[0])
	require.NoError(t, steady.Apply(g, map[core.VertexID]float64{wid: 42}))
	assert.Equal(t, 42.0, wall[0].Temperature())

	assert.ErrorIs(t, steady.Apply(g, map[core.VertexID]float64{0: 1}), core.ErrFixedVertex)
	assert.ErrorIs(t, steady.Apply(g, map[core.VertexID]float64{9: 1}), core.ErrVertexNotFound)
	assert.ErrorIs(t, steady.Apply(nil, nil), steady.ErrGraphNil)
}

func TestSolve_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g, _, _ := divider(t, 2, 1)

	_, err := steady.Solve(g, steady.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "unknowns=3")
	assert.Panics(t, func() { steady.WithLogger(nil) })
}
