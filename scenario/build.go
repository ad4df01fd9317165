// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Scenario → graph, weather clock, HVAC switch and loop options.

package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/control"
	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/simulate"
)

// ErrNoHVAC is returned by Model.Loop when the scenario has no hvac section.
var ErrNoHVAC = errors.New("scenario: no hvac unit to control")

// houseInterior is the sensor name that selects the room air of a house.
const houseInterior = "interior volume"

var wallPresets = map[string]func() []builder.Layer{
	"":          nil,
	"stud":      builder.StudWall,
	"sheetrock": builder.SheetrockWall,
}

var ceilingPresets = map[string]func() []builder.Layer{
	"":          nil,
	"framed":    builder.FramedCeiling,
	"insulated": builder.InsulatedCeiling,
}

// Model is a built scenario, ready to run.
type Model struct {
	Name    string
	Graph   *core.Graph
	Clock   *control.Clock
	Weather control.Weather
	// Switch is nil when the scenario has no HVAC unit.
	Switch     *control.Switch
	Sensor     *core.Vertex
	Thermostat control.Thermostat
	// House is set for house scenarios.
	House *builder.House
	// Record lists the vertices named by run.record, in order.
	Record []*core.Vertex
	Run    RunSpec

	schedule control.Schedule
}

// Build assembles the scenario. Builder options (name prefix, logger,
// initial temperature) apply to every node the builder package creates.
func (s *Scenario) Build(opts ...builder.BuilderOption) (*Model, error) {
	mode, err := control.ParseMode(s.Thermostat.Mode)
	if err != nil {
		return nil, err
	}
	m := &Model{
		Name:       s.Name,
		Clock:      &control.Clock{},
		Weather:    s.weather(),
		Thermostat: control.Thermostat{Low: s.Thermostat.Low, High: s.Thermostat.High, Mode: mode},
		Run:        s.Run,
	}
	if s.HVAC != nil {
		m.Switch = control.NewSwitch(s.HVAC.Output, s.HVAC.On)
	}
	ws := make([]control.Window, len(s.Thermostat.Schedule))
	for i, w := range s.Thermostat.Schedule {
		ws[i] = control.Window{From: w.From, To: w.To, Offset: w.Offset}
	}
	m.schedule = control.Windows(ws...)

	if s.House != nil {
		err = s.buildHouse(m, opts)
	} else {
		err = s.buildNodes(m, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	if name := s.Thermostat.Sensor; name != "" {
		if m.Sensor, err = m.resolve(name); err != nil {
			return nil, fmt.Errorf("scenario %q: sensor: %w", s.Name, err)
		}
	}
	for _, name := range s.Run.Record {
		v, err := m.resolve(name)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: record: %w", s.Name, err)
		}
		m.Record = append(m.Record, v)
	}

	return m, nil
}

func (s *Scenario) weather() control.Weather {
	w := s.Weather
	if w.Kind == "diurnal" {
		return control.DiurnalWeather{Mean: w.Mean, Swing: w.Swing, Period: w.Period.Seconds(), PeakAt: w.PeakAt.Seconds()}
	}
	return control.ConstantWeather(w.Mean)
}

// material resolves custom materials first, then the catalog.
func (s *Scenario) material(name string) core.Material {
	for _, m := range s.Materials {
		if m.Name == name {
			return core.NewMaterial(m.Name, m.K, m.Rho, m.Cp)
		}
	}
	m, _ := core.LookupMaterial(name)
	return m
}

func (s *Scenario) buildHouse(m *Model, opts []builder.BuilderOption) error {
	h := s.House
	roof, err := builder.ParseRoofKind(h.Roof)
	if err != nil {
		return err
	}
	spec := builder.HouseSpec{
		FloorArea:       h.FloorArea,
		WallHeight:      h.WallHeight,
		Outside:         control.Outdoor(m.Clock, m.Weather),
		SkyDepression:   h.SkyDepression,
		Absorptivity:    h.Absorptivity,
		WindowArea:      h.WindowArea,
		Roof:            roof,
		ACH:             h.ACH,
		Floor:           h.Floor,
		SoilTemperature: h.SoilTemperature,
	}
	if h.Insolation != 0 {
		insolation := h.Insolation
		spec.Insolation = func() float64 { return insolation }
	}
	if fn := wallPresets[h.Wall]; fn != nil {
		spec.Wall = fn()
	}
	if fn := ceilingPresets[h.Ceiling]; fn != nil {
		spec.Ceiling = fn()
	}
	if m.Switch != nil {
		spec.HVAC = m.Switch.Heat
	}

	house, err := builder.NewHouse(spec, opts...)
	if err != nil {
		return err
	}
	m.House, m.Graph = house, house.Graph

	return nil
}

func (s *Scenario) buildNodes(m *Model, opts []builder.BuilderOption) error {
	m.Graph = core.NewGraph(core.WithCapacity(len(s.Nodes), len(s.Edges)))
	byName := make(map[string]*core.Vertex, len(s.Nodes))
	for _, n := range s.Nodes {
		v := s.vertex(n, m)
		if _, err := m.Graph.AddVertex(v); err != nil {
			return err
		}
		byName[n.Name] = v
	}
	for _, e := range s.Edges {
		if _, err := m.Graph.Connect(byName[e.From], byName[e.To], e.Area); err != nil {
			return err
		}
	}

	cons := make([]builder.Constructor, 0, len(s.Assemblies))
	for _, a := range s.Assemblies {
		cons = append(cons, builder.Layers(byName[a.From], byName[a.To], a.Area, s.layers(a.Layers)...))
	}

	if err := builder.Apply(m.Graph, opts, cons...); err != nil {
		return err
	}
	for _, mesh := range s.Meshes {
		if err := s.buildMesh(m.Graph, mesh, byName, opts); err != nil {
			return err
		}
	}

	return nil
}

// vertex creates the node n describes. Free and source nodes without a
// temperature start at builder.DefaultInitialTemperature.
func (s *Scenario) vertex(n NodeSpec, m *Model) *core.Vertex {
	mat := s.material(n.Material)
	if nodeKinds[n.Kind] == core.Fixed {
		temp := core.Constant(n.Temperature)
		if n.Weather {
			temp = control.Outdoor(m.Clock, m.Weather)
		}
		return core.NewFixed(n.Name, mat, n.Thickness, n.Area, temp)
	}

	var v *core.Vertex
	if nodeKinds[n.Kind] == core.Source {
		heat := core.ConstantHeat(n.Heat)
		if n.HVAC {
			base, sw := n.Heat, m.Switch
			heat = func() float64 { return base + sw.Heat() }
		}
		v = core.NewSource(n.Name, mat, n.Thickness, n.Area, heat)
	} else {
		v = core.NewFree(n.Name, mat, n.Thickness, n.Area)
	}
	temp := n.Temperature
	if temp == 0 {
		temp = builder.DefaultInitialTemperature
	}

	return v.MustSetTemperature(temp)
}

func (s *Scenario) layers(ls []LayerSpec) []builder.Layer {
	out := make([]builder.Layer, 0, len(ls))
	for _, l := range ls {
		if len(l.Parallel) > 0 {
			group := builder.Parallel(l.Name, s.layers(l.Parallel)...)
			group.Fraction = l.Fraction
			out = append(out, group)
			continue
		}
		bl := builder.Layer{
			Name:        l.Name,
			Material:    s.material(l.Material),
			Thickness:   l.Thickness,
			Fraction:    l.Fraction,
			Split:       l.Split,
			Temperature: l.Temperature,
		}
		if l.Heat != 0 {
			bl.Heat = core.ConstantHeat(l.Heat)
		}
		out = append(out, bl)
	}

	return out
}

// resolve finds a vertex by name. For houses, houseInterior always names the
// room air, whatever prefix the builder applied.
func (m *Model) resolve(name string) (*core.Vertex, error) {
	if m.House != nil && name == houseInterior {
		return m.House.Interior, nil
	}
	v, ok := m.Graph.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, core.ErrVertexNotFound)
	}
	return v, nil
}

// Loop returns a control loop configured from the run and thermostat
// sections, sharing the model's weather clock. extra options are applied
// last and may override any of them.
func (m *Model) Loop(extra ...control.Option) (*control.Loop, error) {
	if m.Switch == nil {
		return nil, ErrNoHVAC
	}
	opts := []control.Option{
		control.WithTimestep(m.Run.Timestep),
		control.WithStepsPerControl(m.Run.StepsPerControl),
		control.WithCycles(m.Run.Cycles),
		control.WithWarmup(m.warmup()),
		control.WithClock(m.Clock),
		control.WithSchedule(m.schedule),
		control.WithSimulateOptions(simulate.WithWorkers(m.Run.Workers)),
	}

	return control.NewLoop(m.Graph, m.Sensor, m.Switch, m.Thermostat, append(opts, extra...)...)
}

// Simulate runs the model open loop with the same cadence as Loop: the
// warm-up, then Cycles intervals of StepsPerControl steps, advancing the
// weather clock and calling observe(t) after every interval. The HVAC
// switch, if any, keeps its initial state.
func (m *Model) Simulate(ctx context.Context, observe func(t float64), opts ...simulate.Option) error {
	opts = append([]simulate.Option{simulate.WithWorkers(m.Run.Workers)}, opts...)
	stepper, err := simulate.NewStepper(m.Graph, m.Run.Timestep, opts...)
	if err != nil {
		return err
	}
	m.Clock.Set(0)
	if err := stepper.Step(m.warmup()); err != nil {
		return err
	}
	interval := m.Run.Timestep * float64(m.Run.StepsPerControl)
	for i := 0; i < m.Run.Cycles; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := stepper.Step(m.Run.StepsPerControl); err != nil {
			return err
		}
		m.Clock.Advance(interval)
		if observe != nil {
			observe(m.Clock.Now())
		}
	}

	return nil
}

func (m *Model) warmup() int {
	if m.Run.Warmup == nil {
		return control.DefaultWarmupSteps
	}
	return *m.Run.Warmup
}
