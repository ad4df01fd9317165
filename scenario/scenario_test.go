package scenario

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/control"
	"github.com/katalvlaran/lvheat/inspect"
)

func TestLoad_Rooms(t *testing.T) {
	s, err := Load("testdata/rooms.yaml")
	require.NoError(t, err)
	assert.Equal(t, "two rooms", s.Name)
	assert.Equal(t, "office", s.Thermostat.Sensor, "first hvac node is the default sensor")
	assert.Equal(t, "cooling", s.Thermostat.Mode)
	assert.Equal(t, 0, *s.Run.Warmup)
	assert.Equal(t, 1, s.Run.Workers)

	m, err := s.Build()
	require.NoError(t, err)
	// 3 nodes; brick ×2, foam, stud, paneling; store wall.
	assert.Equal(t, 9, m.Graph.VertexCount())
	// office–store; 7 through the framed wall; 2 through the store wall.
	assert.Equal(t, 10, m.Graph.EdgeCount())
	assert.Equal(t, "office", m.Sensor.Name())
	require.Len(t, m.Record, 3)
	assert.Equal(t, "outside", m.Record[2].Name())

	brick, ok := m.Graph.Lookup("brick 0")
	require.True(t, ok)
	assert.Equal(t, "Brick", brick.Material().Name)
	assert.InDelta(t, 0.05, brick.Thickness(), 1e-12)
	stud, ok := m.Graph.Lookup("stud")
	require.True(t, ok)
	assert.InDelta(t, 6, stud.Area(), 1e-12)

	office := m.Sensor
	assert.Equal(t, 295.0, office.Temperature())
	assert.Equal(t, 300.0, office.HeatGeneration())
	m.Switch.Set(true)
	assert.Equal(t, -1700.0, office.HeatGeneration())
	m.Switch.Set(false)

	dt, _, err := inspect.StableTimestep(m.Graph)
	require.NoError(t, err)
	assert.Greater(t, dt, s.Run.Timestep)
}

func TestValidate_AssemblyLayerNames(t *testing.T) {
	s, err := Load("testdata/rooms.yaml")
	require.NoError(t, err)
	s.Thermostat.Sensor = "paneling"
	s.Run.Record = []string{"brick 1", "stud", "paneling", "store wall"}
	require.NoError(t, s.Validate())

	m, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "paneling", m.Sensor.Name())
	require.Len(t, m.Record, 4)
	assert.Equal(t, "brick 1", m.Record[0].Name())

	loop, err := m.Loop(control.WithCycles(2))
	require.NoError(t, err)
	sum, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Cycles)

	// A split layer has no node under its own name, nor does a parallel group.
	s.Thermostat.Sensor = "frame"
	s.Run.Record = []string{"brick", "brick 2"}
	err = s.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), `unknown sensor "frame"`)
	assert.Contains(t, err.Error(), `run.record: unknown node "brick"`)
	assert.Contains(t, err.Error(), `run.record: unknown node "brick 2"`)
}

func TestLoad_Meshes(t *testing.T) {
	s, err := Load("testdata/meshes.yaml")
	require.NoError(t, err)

	m, err := s.Build()
	require.NoError(t, err)
	// 2 nodes, 2×3 slab cells, 4 rod cells.
	assert.Equal(t, 12, m.Graph.VertexCount())
	// 7 inside the slab, 3 along the rod, 4 links.
	assert.Equal(t, 14, m.Graph.EdgeCount())
	require.Len(t, m.Record, 3)
	assert.Equal(t, "slab 0,0", m.Record[1].Name())
	assert.Equal(t, "rod D", m.Record[2].Name())

	corner, ok := m.Graph.Lookup("slab 1,2")
	require.True(t, ok)
	assert.Equal(t, 290.0, corner.Temperature())
	assert.Equal(t, "Concrete", corner.Material().Name)
	rodA, ok := m.Graph.Lookup("rod A")
	require.True(t, ok)
	assert.InDelta(t, 0.01, rodA.Area(), 1e-12)
	assert.Equal(t, builder.DefaultInitialTemperature, rodA.Temperature())

	// Seeded contact areas: within bounds and identical on a rebuild.
	areas := func(m *Model) []float64 {
		var out []float64
		for _, e := range m.Graph.Edges() {
			src, err := m.Graph.EdgeSource(e)
			require.NoError(t, err)
			dst, err := m.Graph.EdgeTarget(e)
			require.NoError(t, err)
			if strings.HasPrefix(src.Name(), "slab ") && strings.HasPrefix(dst.Name(), "slab ") {
				out = append(out, e.Area)
			}
		}
		return out
	}
	first := areas(m)
	require.Len(t, first, 7)
	for _, a := range first {
		assert.GreaterOrEqual(t, a, 0.5)
		assert.Less(t, a, 1.0)
	}
	again, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, first, areas(again))

	r, err := inspect.Inspect(m.Graph)
	require.NoError(t, err)
	assert.Empty(t, r.Islands)
	assert.True(t, r.Stable(s.Run.Timestep))

	// Nothing can leave the range of the initial and boundary temperatures.
	require.NoError(t, m.Simulate(context.Background(), nil))
	for _, v := range m.Graph.Vertices() {
		assert.GreaterOrEqual(t, v.Temperature(), 280.0-1e-9, v.Name())
		assert.LessOrEqual(t, v.Temperature(), 295.0+1e-9, v.Name())
	}
}

func TestModel_LoopIsDeterministic(t *testing.T) {
	run := func() *control.Summary {
		s, err := Load("testdata/rooms.yaml")
		require.NoError(t, err)
		m, err := s.Build()
		require.NoError(t, err)
		loop, err := m.Loop()
		require.NoError(t, err)
		assert.Equal(t, 60.0, loop.Interval())
		sum, err := loop.Run(context.Background())
		require.NoError(t, err)
		return sum
	}
	a, b := run(), run()
	assert.Equal(t, 120, a.Cycles)
	assert.Equal(t, a, b)
	assert.Greater(t, a.Min, 285.0)
	assert.Less(t, a.Max, 305.0)
}

func TestLoad_Solar(t *testing.T) {
	s, err := Load("testdata/solar.yaml")
	require.NoError(t, err)
	assert.Equal(t, control.DefaultTimestep, s.Run.Timestep)
	assert.Equal(t, control.DefaultStepsPerControl, s.Run.StepsPerControl)
	assert.Equal(t, control.DefaultCycles, s.Run.Cycles)
	assert.Equal(t, control.DefaultWarmupSteps, *s.Run.Warmup)
	assert.Equal(t, houseInterior, s.Thermostat.Sensor)
	assert.Equal(t, 86400.0, s.Weather.Period.Seconds())
	assert.Equal(t, 54000.0, s.Weather.PeakAt.Seconds())

	m, err := s.Build()
	require.NoError(t, err)
	require.NotNil(t, m.House)
	assert.Same(t, m.House.Interior, m.Sensor)
	require.Len(t, m.Record, 3)
	assert.Same(t, m.House.Outside, m.Record[2])

	// The outdoor node follows the model clock.
	want := 300 + 6*math.Cos(2*math.Pi*(0-54000)/86400)
	assert.InDelta(t, want, m.House.Outside.Temperature(), 1e-9)
	m.Clock.Set(54000)
	assert.InDelta(t, 306, m.House.Outside.Temperature(), 1e-9)
	m.Clock.Set(0)

	// HVAC plus 5 m² of windows at 1000 W/m².
	assert.Equal(t, 5000.0, m.Sensor.HeatGeneration())
	m.Switch.Set(true)
	assert.Equal(t, -7000.0, m.Sensor.HeatGeneration())
	m.Switch.Set(false)

	assert.Equal(t, -2.0, m.schedule(601))
	assert.Equal(t, 2.0, m.schedule(839))
	assert.Equal(t, 0.0, m.schedule(840))

	loop, err := m.Loop(control.WithCycles(3), control.WithWarmup(0))
	require.NoError(t, err)
	sum, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Cycles)
	assert.InDelta(t, 180, m.Clock.Now(), 1e-9)
}

func TestModel_Simulate(t *testing.T) {
	s, err := Parse([]byte(`
nodes:
  - {name: air, kind: fixed, material: for testing, thickness: 1, area: 1, weather: true}
  - {name: block, material: for testing, thickness: 1, area: 1, temperature: 290}
edges:
  - {from: air, to: block, area: 1}
run: {timestep: 100, steps_per_control: 10, cycles: 10, warmup: 0}
`))
	require.NoError(t, err)
	m, err := s.Build()
	require.NoError(t, err)
	assert.Nil(t, m.Switch)
	assert.Nil(t, m.Sensor)

	_, err = m.Loop()
	assert.ErrorIs(t, err, ErrNoHVAC)

	var times []float64
	require.NoError(t, m.Simulate(context.Background(), func(t float64) { times = append(times, t) }))
	require.Len(t, times, 10)
	assert.Equal(t, 1000.0, times[0])
	assert.Equal(t, 10000.0, times[9])

	// 1e5 J/K behind 1 W/K, outdoor air at the default 305 K.
	block, _ := m.Graph.Lookup("block")
	assert.InDelta(t, 305-15*math.Exp(-0.1), block.Temperature(), 1e-3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Simulate(ctx, nil), context.Canceled)
}

func TestParse_Errors(t *testing.T) {
	const node = `nodes: [{name: a, kind: source, material: iron, thickness: 1, area: 1}]` + "\n"
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"empty", ``, []string{"one of house or nodes is required"}},
		{"both", node + "house: {}\n", []string{"mutually exclusive"}},
		{"kind", `nodes: [{name: a, kind: warm, material: iron, thickness: 1, area: 1}]`, []string{`unknown kind "warm"`}},
		{"material", `nodes: [{name: a, material: cheese, thickness: 1, area: 1}]`, []string{`unknown material "cheese"`}},
		{"geometry", `nodes: [{name: a, material: iron, thickness: 0, area: 1}]`, []string{"thickness and area must be > 0"}},
		{"duplicate", `nodes: [{name: a, material: iron, thickness: 1, area: 1}, {name: a, material: iron, thickness: 1, area: 1}]`, []string{"duplicate name"}},
		{"weather on free", `nodes: [{name: a, material: iron, thickness: 1, area: 1, weather: true}]`, []string{"only fixed nodes"}},
		{"heat on free", `nodes: [{name: a, material: iron, thickness: 1, area: 1, heat: 5}]`, []string{"need kind source"}},
		{"hvac missing", `nodes: [{name: a, kind: source, material: iron, thickness: 1, area: 1, hvac: true}]`, []string{"no hvac section"}},
		{"edge", node + "edges: [{from: a, to: b, area: 0}]\n", []string{`unknown node "b"`, "area must be > 0"}},
		{"layer", node + "assemblies: [{from: a, to: a, area: 1, layers: [{name: x, material: iron, thickness: 1, fraction: 2}]}]\n", []string{"fraction must be in [0, 1]"}},
		{"roof", "house: {roof: dome}\n", []string{`unknown roof "dome"`}},
		{"wall", "house: {wall: straw}\n", []string{`unknown wall "straw"`}},
		{"weather", node + "weather: {kind: monsoon}\n", []string{`unknown kind "monsoon"`}},
		{"mode", node + "thermostat: {mode: venting}\n", []string{`unknown mode "venting"`}},
		{"band", node + "thermostat: {low: 300, high: 290}\n", []string{"low 300 above high 290"}},
		{"sensor", node + "thermostat: {sensor: b}\n", []string{`unknown sensor "b"`}},
		{"schedule", node + "thermostat: {schedule: [{from: 5, to: 2}]}\n", []string{"from <= to"}},
		{"run", node + "run: {timestep: -1, warmup: -5}\n", []string{"timestep must be > 0", "warmup must be >= 0"}},
		{"record", node + "run: {record: [b]}\n", []string{`unknown node "b"`}},
		{"mesh", node + "meshes: [{name: m, kind: ring, material: iron, thickness: 0, cell_area: 1}]\n", []string{`meshes[0]: unknown kind "ring"`, "thickness and cell_area must be > 0"}},
		{"mesh links", node + "meshes: [{name: m, kind: path, count: 2, material: iron, thickness: 1, cell_area: 1, links: [{node: b, cell: \"7\", area: 1}]}]\n", []string{`unknown node "b"`, `unknown cell "7"`}},
		{"mesh area", node + "meshes: [{name: m, kind: grid, rows: 1, cols: 2, material: iron, thickness: 1, cell_area: 1, edge_area: {kind: uniform, min: 2, max: 1}}]\n", []string{"need 0 < min <= max"}},
		{"mesh size", node + "meshes: [{name: m, kind: grid, material: iron, thickness: 1, cell_area: 1, names: letters}]\n", []string{"rows and cols must be >= 1", "names apply to path meshes only"}},
		{"custom material", "materials: [{name: goo}]\n" + node, []string{`material "goo": k, rho and cp must be > 0`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalid)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("nodez: []\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "nodez")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	var v struct {
		A, B Duration
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 90m\nb: 3600\n"), &v))
	assert.Equal(t, 5400.0, v.A.Seconds())
	assert.Equal(t, 3600.0, v.B.Seconds())
	assert.Error(t, yaml.Unmarshal([]byte("a: soon\n"), &v))

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "a: 1h30m0s\nb: 1h0m0s\n", string(out))
}

func TestScenario_Marshal(t *testing.T) {
	s, err := Load("testdata/solar.yaml")
	require.NoError(t, err)
	data, err := s.Marshal()
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestExamples(t *testing.T) {
	paths, err := filepath.Glob("../examples/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Load(path)
			require.NoError(t, err)
			m, err := s.Build()
			require.NoError(t, err)
			require.NotEmpty(t, m.Record)

			r, err := inspect.Inspect(m.Graph)
			require.NoError(t, err)
			assert.Empty(t, r.Islands)
			assert.True(t, r.Stable(s.Run.Timestep), "dt %g above bound %g set by %q",
				s.Run.Timestep, r.StableTimestep, r.Name(r.Stiffest))
		})
	}
}
