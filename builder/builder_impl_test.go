// File: builder_impl_test.go
// Package builder_test contains functional tests for the Constructor
// implementations: topology, counts, areas, names and error contracts.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/core"
)

// edgeAreas maps "a|b" (insertion order) to the summed edge area.
func edgeAreas(t *testing.T, g *core.Graph) map[string]float64 {
	t.Helper()
	out := map[string]float64{}
	for _, e := range g.Edges() {
		a, err := g.EdgeSource(e)
		require.NoError(t, err)
		b, err := g.EdgeTarget(e)
		require.NoError(t, err)
		out[a.Name()+"|"+b.Name()] += e.Area
	}
	return out
}

func mustLookup(t *testing.T, g *core.Graph, name string) *core.Vertex {
	t.Helper()
	v, ok := g.Lookup(name)
	require.True(t, ok, "missing vertex %q", name)
	return v
}

func TestPath(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithArea(2), builder.WithLabeledNames("rod "), builder.WithInitialTemperature(300)},
		builder.Path(4, core.Iron, 0.05))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	areas := edgeAreas(t, g)
	assert.Equal(t, map[string]float64{"rod 0|rod 1": 2, "rod 1|rod 2": 2, "rod 2|rod 3": 2}, areas)
	for _, v := range g.Vertices() {
		assert.Equal(t, core.Free, v.Kind())
		assert.Equal(t, 300.0, v.Temperature())
		assert.Equal(t, 2.0, v.Area())
	}

	_, err = builder.BuildGraph(nil, nil, builder.Path(0, core.Iron, 1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 4, core.Concrete, 0.1))
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 3*3+4*2, g.EdgeCount())

	corner := mustLookup(t, g, "0,0")
	center := mustLookup(t, g, "1,1")
	dc, _ := g.Degree(corner)
	dm, _ := g.Degree(center)
	assert.Equal(t, 2, dc)
	assert.Equal(t, 4, dm)

	_, err = builder.BuildGraph(nil, nil, builder.Grid(0, 4, core.Concrete, 0.1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid_SeededAreas(t *testing.T) {
	t.Parallel()

	build := func() map[string]float64 {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(9), builder.WithUniformEdgeArea(0.5, 1.5)},
			builder.Grid(4, 4, core.Concrete, 0.1))
		require.NoError(t, err)
		return edgeAreas(t, g)
	}
	assert.Equal(t, build(), build())

	_, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithUniformEdgeArea(0.5, 1.5)},
		builder.Grid(2, 2, core.Concrete, 0.1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestLayers_StudWall checks the framing split: sheathing meets insulation
// over 80 % and the stud over 20 % of the wall.
func TestLayers_StudWall(t *testing.T) {
	t.Parallel()

	out := core.NewFixed("out", core.AirBulkMixed, 10, 100, core.Constant(305))
	in := core.NewFree("in", core.AirBulkMixed, 2.5, 100)
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithInitialTemperature(300)},
		builder.Layers(out, in, 100, builder.StudWall()...))
	require.NoError(t, err)

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, map[string]float64{
		"out|sheathing":                 100,
		"sheathing|wall insulation":     80,
		"sheathing|wall stud":           20,
		"wall insulation|wall paneling": 80,
		"wall stud|wall paneling":       20,
		"wall paneling|in":              100,
	}, edgeAreas(t, g))

	ins := mustLookup(t, g, "wall insulation")
	assert.Equal(t, 80.0, ins.Area())
	assert.Equal(t, 0.09, ins.Thickness())
	assert.Equal(t, 300.0, ins.Temperature())
	assert.Equal(t, 0.0, in.Temperature(), "existing endpoints keep their state")
}

func TestLayers_SplitHeatAndTemperature(t *testing.T) {
	t.Parallel()

	a := core.NewFixed("a", core.ForTesting, 1, 1, core.Constant(0))
	b := core.NewFixed("b", core.ForTesting, 1, 1, core.Constant(0))
	g, err := builder.BuildGraph(nil, nil, builder.Layers(a, b, 2,
		builder.Layer{Name: "slab", Material: core.ForTesting, Thickness: 0.3, Split: 3,
			Heat: core.ConstantHeat(7), Temperature: 250},
	))
	require.NoError(t, err)

	require.Equal(t, 5, g.VertexCount())
	s0 := mustLookup(t, g, "slab 0")
	s2 := mustLookup(t, g, "slab 2")
	assert.Equal(t, core.Source, s0.Kind(), "heat lands on the outermost sub-node")
	assert.Equal(t, 7.0, s0.HeatGeneration())
	assert.Equal(t, core.Free, s2.Kind())
	assert.InDelta(t, 0.1, s2.Thickness(), 1e-15)
	assert.Equal(t, 250.0, s2.Temperature())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestLayers_Errors(t *testing.T) {
	t.Parallel()

	a := core.NewFixed("a", core.ForTesting, 1, 1, core.Constant(0))
	b := core.NewFree("b", core.ForTesting, 1, 1)
	slab := builder.Layer{Name: "slab", Material: core.ForTesting, Thickness: 1}

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"nil endpoint", builder.Layers(nil, b, 1, slab), builder.ErrNilVertex},
		{"no layers", builder.Layers(a, b, 1), builder.ErrNoLayers},
		{"empty group", builder.Layers(a, b, 1, builder.Parallel("cavity")), builder.ErrNoLayers},
		{"fraction above one", builder.Layers(a, b, 1,
			builder.Layer{Name: "x", Material: core.ForTesting, Thickness: 1, Fraction: 1.5}), builder.ErrBadFraction},
		{"negative split", builder.Layers(a, b, 1,
			builder.Layer{Name: "x", Material: core.ForTesting, Thickness: 1, Split: -2}), builder.ErrTooFewVertices},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(1, core.Iron, 1)), builder.ErrConstructFailed)
}

func TestLayer_Resistance(t *testing.T) {
	t.Parallel()

	fir := builder.Layer{Material: core.DouglasFir, Thickness: 0.015}
	assert.InDelta(t, 0.1, fir.Resistance(), 1e-12)

	cavity := builder.StudWall()[1]
	require.True(t, cavity.IsParallel())
	require.Len(t, cavity.Paths(), 2)
	// U = 0.8·0.033/0.09 + 0.2·0.15/0.09
	u := 0.8*0.033/0.09 + 0.2*0.15/0.09
	assert.InDelta(t, 1/u, cavity.Resistance(), 1e-12)
}

func TestInfiltration(t *testing.T) {
	t.Parallel()

	const (
		ach    = 0.5
		volume = 625.0
		area   = 158.0
	)
	out := core.NewFixed("out", core.AirBulkMixed, 10, area, core.Constant(305))
	in := core.NewSource("in", core.AirBulkMixed, 4, area, core.ConstantHeat(0))
	g, err := builder.BuildGraph(nil, nil, builder.Infiltration(out, in, ach, volume, area))
	require.NoError(t, err)

	node := mustLookup(t, g, "infiltration")
	want := ach / 3600 * volume * core.AirBulkMixed.VolumetricHeatCapacity()
	assert.InDelta(t, 107.0, want, 0.1)
	assert.InDelta(t, want, builder.InfiltrationConductance(ach, volume), 1e-12)
	// Face-to-face conductance of the pseudo-node equals the air-exchange W/K.
	assert.InDelta(t, want, node.Conductance(), 1e-9)
	assert.Equal(t, 2, g.EdgeCount())
}
