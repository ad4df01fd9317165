// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// impl_layers.go - series assemblies of material layers.
//
// Model:
//   • An assembly runs from one existing node to another (outside air to
//     room air, room air to deep soil) through an ordered list of layers.
//   • A plain Layer is one node, or Split equal sub-nodes chained in series.
//   • A Parallel group holds paths that conduct side by side (insulation
//     between studs). Each path covers Fraction of the assembly area.
//   • Adjacent stages are joined port to port: a node covering fa meets a node
//     covering fb over area·fa·fb. A single layer presents fraction 1.
//
// Determinism:
//   • Nodes are created in layer order; within a group in path order; within
//     a split slab outside-in. Edges follow the same order.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvheat/core"
)

// Layer is one slab of an assembly, or a parallel group built by Parallel.
type Layer struct {
	// Name labels the node ("sheathing"); split nodes get " 0", " 1", ... appended.
	Name string
	// Material of the slab.
	Material core.Material
	// Thickness of the whole slab, m (split nodes share it equally).
	Thickness float64
	// Fraction of the assembly area covered; 0 means 1.
	Fraction float64
	// Split > 1 subdivides the slab into equal sub-nodes; 0 means 1.
	Split int
	// Heat, when non-nil, makes the (outermost) node a Source.
	Heat core.HeatFunc
	// Temperature overrides the initial temperature, K; 0 means the builder default.
	Temperature float64

	paths []Layer
}

// Parallel groups paths that conduct side by side. Each path is itself a
// Layer (plain, split or nested group) and should set Fraction; the
// fractions of a group normally sum to 1. Heat on a group is ignored.
func Parallel(name string, paths ...Layer) Layer {
	if paths == nil {
		paths = []Layer{}
	}
	return Layer{Name: name, paths: paths}
}

// IsParallel reports whether l is a group built by Parallel.
func (l Layer) IsParallel() bool { return l.paths != nil }

// Paths returns a copy of the group's paths (nil for a plain layer).
func (l Layer) Paths() []Layer {
	if l.paths == nil {
		return nil
	}
	return append([]Layer(nil), l.paths...)
}

// Resistance returns the series R-value of a plain layer, (m²·K)/W per unit
// area: thickness/k. For a group it returns the area-weighted parallel value.
func (l Layer) Resistance() float64 {
	if !l.IsParallel() {
		return l.Thickness / l.Material.K
	}
	u := 0.0
	for _, p := range l.paths {
		u += resolveFraction(p.Fraction) / p.Resistance()
	}

	return 1 / u
}

func resolveFraction(f float64) float64 {
	if f == 0 {
		return 1
	}
	return f
}

// Layers returns a Constructor that builds the assembly from → layers → to
// over the given area, m². from and to are added to g if missing.
//
// Errors: ErrNilVertex, ErrNoLayers, ErrBadFraction, ErrTooFewVertices
// (negative Split), ErrConstructFailed (core rejection).
//
// Complexity: O(Σ nodes + Σ edges); a group of p paths followed by one of q
// paths emits p·q edges.
func Layers(from, to *core.Vertex, area float64, layers ...Layer) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateEndpoints(MethodLayers, from, to); err != nil {
			return err
		}
		if len(layers) == 0 {
			return builderErrorf(MethodLayers, "%q→%q: %w", from.Name(), to.Name(), ErrNoLayers)
		}
		for _, v := range []*core.Vertex{from, to} {
			if err := addNode(g, MethodLayers, v); err != nil {
				return err
			}
		}

		prev := []port{{v: from, frac: 1}}
		created := 0
		for i, l := range layers {
			in, out, n, err := buildStage(g, cfg, area, 1, l)
			if err != nil {
				return builderErrorf(MethodLayers, "layer %d %q: %w", i, l.Name, err)
			}
			if err := connectPorts(g, MethodLayers, prev, in, area); err != nil {
				return err
			}
			prev = out
			created += n
		}
		if err := connectPorts(g, MethodLayers, prev, []port{{v: to, frac: 1}}, area); err != nil {
			return err
		}

		cfg.logger.Debug("builder: layers",
			slog.String("from", from.Name()),
			slog.String("to", to.Name()),
			slog.Float64("area", area),
			slog.Int("nodes", created))

		return nil
	}
}

// SplitNodeName returns the name Layers gives to sub-node i of a layer
// split into split nodes: the layer name itself when split <= 1, else
// "name i".
func SplitNodeName(name string, i, split int) string {
	if split <= 1 {
		return name
	}

	return fmt.Sprintf("%s %d", name, i)
}

// buildStage creates the nodes of one layer covering scale of the assembly
// and returns its inward and outward ports plus the node count.
func buildStage(g *core.Graph, cfg builderConfig, area, scale float64, l Layer) (in, out []port, n int, err error) {
	frac := resolveFraction(l.Fraction)
	if err := validateFraction(MethodLayers, l.Name, frac); err != nil {
		return nil, nil, 0, err
	}
	frac *= scale

	if l.IsParallel() {
		if len(l.paths) == 0 {
			return nil, nil, 0, fmt.Errorf("group %q: %w", l.Name, ErrNoLayers)
		}
		for _, p := range l.paths {
			pin, pout, pn, err := buildStage(g, cfg, area, frac, p)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("group %q: %w", l.Name, err)
			}
			in = append(in, pin...)
			out = append(out, pout...)
			n += pn
		}
		return in, out, n, nil
	}

	split := l.Split
	if split == 0 {
		split = 1
	}
	if err := validateMin(MethodLayers, "split", split, MinSplit); err != nil {
		return nil, nil, 0, err
	}

	nodeArea := area * frac
	var first, prev *core.Vertex
	for i := 0; i < split; i++ {
		s := nodeSpec{
			name:        SplitNodeName(l.Name, i, split),
			material:    l.Material,
			thickness:   l.Thickness / float64(split),
			area:        nodeArea,
			temperature: l.Temperature,
		}
		if i == 0 {
			s.heat = l.Heat
		}
		v := newNode(cfg, s)
		if err := addNode(g, MethodLayers, v); err != nil {
			return nil, nil, 0, err
		}
		if prev != nil {
			if err := connect(g, MethodLayers, prev, v, nodeArea); err != nil {
				return nil, nil, 0, err
			}
		} else {
			first = v
		}
		prev = v
	}

	return []port{{v: first, frac: frac}}, []port{{v: prev, frac: frac}}, split, nil
}
