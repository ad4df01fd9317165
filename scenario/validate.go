package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/control"
	"github.com/katalvlaran/lvheat/core"
)

var nodeKinds = map[string]core.Kind{
	"free":   core.Free,
	"fixed":  core.Fixed,
	"source": core.Source,
}

// Validate checks the scenario and reports every problem found, each
// wrapping ErrInvalid.
func (s *Scenario) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
	}

	custom := make(map[string]bool, len(s.Materials))
	for i, m := range s.Materials {
		switch {
		case m.Name == "":
			bad("materials[%d]: name is required", i)
		case custom[m.Name]:
			bad("materials[%d]: duplicate name %q", i, m.Name)
		}
		if m.K <= 0 || m.Rho <= 0 || m.Cp <= 0 {
			bad("material %q: k, rho and cp must be > 0", m.Name)
		}
		custom[m.Name] = true
	}
	known := func(name string) bool {
		if custom[name] {
			return true
		}
		_, ok := core.LookupMaterial(name)
		return ok
	}

	switch s.Weather.Kind {
	case "constant":
	case "diurnal":
		if s.Weather.Period < 0 {
			bad("weather: period must be >= 0")
		}
	default:
		bad("weather: unknown kind %q", s.Weather.Kind)
	}

	switch {
	case s.House != nil && len(s.Nodes) > 0:
		bad("house and nodes are mutually exclusive")
	case s.House == nil && len(s.Nodes) == 0:
		bad("one of house or nodes is required")
	}

	nodes := make(map[string]NodeSpec, len(s.Nodes))
	hvacNodes := 0
	for i, n := range s.Nodes {
		if n.Name == "" {
			bad("nodes[%d]: name is required", i)
			continue
		}
		if _, dup := nodes[n.Name]; dup {
			bad("node %q: duplicate name", n.Name)
		}
		nodes[n.Name] = n
		kind, ok := nodeKinds[n.Kind]
		if !ok {
			bad("node %q: unknown kind %q", n.Name, n.Kind)
		}
		if !known(n.Material) {
			bad("node %q: unknown material %q", n.Name, n.Material)
		}
		if n.Thickness <= 0 || n.Area <= 0 {
			bad("node %q: thickness and area must be > 0", n.Name)
		}
		if n.Weather && kind != core.Fixed {
			bad("node %q: only fixed nodes follow the weather", n.Name)
		}
		if (n.Heat != 0 || n.HVAC) && kind != core.Source {
			bad("node %q: heat and hvac need kind source", n.Name)
		}
		if n.HVAC {
			hvacNodes++
		}
	}
	if hvacNodes > 0 && s.HVAC == nil {
		bad("nodes reference hvac but no hvac section is given")
	}

	for i, e := range s.Edges {
		s.checkEnds(bad, fmt.Sprintf("edges[%d]", i), e.From, e.To, e.Area, nodes)
	}
	for i, a := range s.Assemblies {
		where := fmt.Sprintf("assemblies[%d]", i)
		s.checkEnds(bad, where, a.From, a.To, a.Area, nodes)
		if len(a.Layers) == 0 {
			bad("%s: no layers", where)
		}
		checkLayers(bad, where, a.Layers, known)
	}

	vertices := make(map[string]bool, len(nodes))
	for name := range nodes {
		vertices[name] = true
	}
	for _, a := range s.Assemblies {
		layerNodes(a.Layers, vertices)
	}
	if s.House != nil && len(s.Meshes) > 0 {
		bad("meshes need nodes, not a house")
	}
	s.checkMeshes(bad, known, nodes, vertices)

	if h := s.House; h != nil {
		if _, err := builder.ParseRoofKind(h.Roof); err != nil {
			bad("house: unknown roof %q", h.Roof)
		}
		if _, ok := wallPresets[h.Wall]; !ok {
			bad("house: unknown wall %q", h.Wall)
		}
		if _, ok := ceilingPresets[h.Ceiling]; !ok {
			bad("house: unknown ceiling %q", h.Ceiling)
		}
		if h.FloorArea < 0 || h.WallHeight < 0 || h.ACH < 0 || h.WindowArea < 0 {
			bad("house: floor_area, wall_height, ach and window_area must be >= 0")
		}
	}

	if _, err := control.ParseMode(s.Thermostat.Mode); err != nil {
		bad("thermostat: %v", err)
	}
	if s.Thermostat.Low > s.Thermostat.High {
		bad("thermostat: low %g above high %g", s.Thermostat.Low, s.Thermostat.High)
	}
	sensor := s.Thermostat.Sensor
	switch {
	case sensor == "" && s.HVAC != nil:
		bad("thermostat: sensor is required")
	case sensor != "" && s.House == nil && !vertices[sensor]:
		bad("thermostat: unknown sensor %q", sensor)
	}
	for i, w := range s.Thermostat.Schedule {
		if w.From < 0 || w.To < w.From {
			bad("thermostat.schedule[%d]: need 0 <= from <= to", i)
		}
	}

	r := s.Run
	if r.Timestep <= 0 {
		bad("run: timestep must be > 0")
	}
	if r.StepsPerControl < 1 {
		bad("run: steps_per_control must be >= 1")
	}
	if r.Cycles < 0 || (r.Warmup != nil && *r.Warmup < 0) {
		bad("run: cycles and warmup must be >= 0")
	}
	if r.Workers < 1 {
		bad("run: workers must be >= 1")
	}
	if s.House == nil {
		for _, name := range r.Record {
			if !vertices[name] {
				bad("run.record: unknown node %q", name)
			}
		}
	}

	return errors.Join(errs...)
}

func (s *Scenario) checkEnds(bad func(string, ...interface{}), where, from, to string, area float64, nodes map[string]NodeSpec) {
	if _, ok := nodes[from]; !ok {
		bad("%s: unknown node %q", where, from)
	}
	if _, ok := nodes[to]; !ok {
		bad("%s: unknown node %q", where, to)
	}
	if area <= 0 {
		bad("%s: area must be > 0", where)
	}
}

func checkLayers(bad func(string, ...interface{}), where string, ls []LayerSpec, known func(string) bool) {
	for _, l := range ls {
		at := where + "/" + l.Name
		if len(l.Parallel) > 0 {
			checkLayers(bad, at, l.Parallel, known)
			continue
		}
		if !known(l.Material) {
			bad("%s: unknown material %q", at, l.Material)
		}
		if l.Thickness <= 0 {
			bad("%s: thickness must be > 0", at)
		}
		if l.Fraction < 0 || l.Fraction > 1 {
			bad("%s: fraction must be in [0, 1]", at)
		}
		if l.Split < 0 {
			bad("%s: split must be >= 0", at)
		}
	}
}

// layerNodes adds the names of the vertices an assembly's layers create.
func layerNodes(ls []LayerSpec, into map[string]bool) {
	for _, l := range ls {
		if len(l.Parallel) > 0 {
			layerNodes(l.Parallel, into)
			continue
		}
		for i := 0; i < max(l.Split, 1); i++ {
			into[builder.SplitNodeName(l.Name, i, l.Split)] = true
		}
	}
}
