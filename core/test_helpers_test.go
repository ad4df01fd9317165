// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/lvheat/core"
)

// Common geometry used across core tests (avoid magic numbers in test bodies).
const (
	Thickness1 = 1.0
	Area1      = 1.0
	Area10     = 10.0

	Tolerance = 1e-9
)

// newChain builds Fixed(0 K), Free and Source(heat W) in a chain with unit test material.
func newChain(heat float64) (*core.Graph, *core.Vertex, *core.Vertex, *core.Vertex) {
	g := core.NewGraph()
	sink := core.NewFixed("sink", core.ForTesting, Thickness1, Area10, core.Constant(0))
	mid := core.NewFree("mid", core.ForTesting, Thickness1, Area10)
	src := core.NewSource("src", core.ForTesting, Thickness1, Area10, core.ConstantHeat(heat))
	for _, v := range []*core.Vertex{sink, mid, src} {
		_, _ = g.AddVertex(v)
	}
	_, _ = g.Connect(sink, mid, Area10)
	_, _ = g.Connect(mid, src, Area10)

	return g, sink, mid, src
}
