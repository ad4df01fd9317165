// Package builder provides internal helper functions used by Constructor
// implementations to create, register and connect thermal nodes.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with builderErrorf for uniform reporting.
//   - Created nodes always start at the configured initial temperature.
package builder

import (
	"github.com/katalvlaran/lvheat/core"
)

// nodeSpec describes one node to be created.
type nodeSpec struct {
	name        string
	material    core.Material
	thickness   float64
	area        float64
	heat        core.HeatFunc // non-nil makes a Source
	temperature float64       // 0 means cfg.temperature
}

// newNode creates a Free or Source vertex at its initial temperature.
func newNode(cfg builderConfig, s nodeSpec) *core.Vertex {
	var v *core.Vertex
	if s.heat != nil {
		v = core.NewSource(cfg.name(s.name), s.material, s.thickness, s.area, s.heat)
	} else {
		v = core.NewFree(cfg.name(s.name), s.material, s.thickness, s.area)
	}
	t := s.temperature
	if t == 0 {
		t = cfg.temperature
	}

	return v.MustSetTemperature(t)
}

// addNode registers v in g, wrapping failures with method context.
func addNode(g *core.Graph, method string, v *core.Vertex) error {
	if _, err := g.AddVertex(v); err != nil {
		return builderErrorf(method, "AddVertex(%q): %w: %w", v.Name(), err, ErrConstructFailed)
	}

	return nil
}

// connect adds an edge of the given area between a and b.
func connect(g *core.Graph, method string, a, b *core.Vertex, area float64) error {
	if _, err := g.Connect(a, b, area); err != nil {
		return builderErrorf(method, "Connect(%q→%q): %w: %w", a.Name(), b.Name(), err, ErrConstructFailed)
	}

	return nil
}

// port is an attachment point of a built stage: a node and the share of the
// assembly area it presents.
type port struct {
	v    *core.Vertex
	frac float64
}

// connectPorts joins every port of a to every port of b. Port i meets port j
// over area·fi·fj, which sums to area when each side's fractions sum to 1.
func connectPorts(g *core.Graph, method string, a, b []port, area float64) error {
	for _, pa := range a {
		for _, pb := range b {
			if err := connect(g, method, pa.v, pb.v, area*pa.frac*pb.frac); err != nil {
				return err
			}
		}
	}

	return nil
}
