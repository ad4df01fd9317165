// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// impl_path.go - implementation of Path(n, material, thickness) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds n Free nodes named prefix+nameFn(i), area cfg.area, in index order.
//   - Emits edges (i-1) - i for i=1..n-1 in increasing order; the edge area is
//     cfg.area unless an AreaFn is configured.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/lvheat/core"
)

// Path returns a Constructor that builds a uniform rod of n nodes.
func Path(n int, m core.Material, thickness float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		var prev *core.Vertex
		for i := 0; i < n; i++ {
			v := newNode(cfg, nodeSpec{name: cfg.nameFn(i), material: m, thickness: thickness, area: cfg.area})
			if err := addNode(g, MethodPath, v); err != nil {
				return err
			}
			if prev != nil {
				area, err := cfg.edgeArea(cfg.area)
				if err != nil {
					return builderErrorf(MethodPath, "edge %d: %w", i, err)
				}
				if err := connect(g, MethodPath, prev, v, area); err != nil {
					return err
				}
			}
			prev = v
		}

		return nil
	}
}
