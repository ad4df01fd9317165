// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components and islands via bfs.Walk over one Topology.
//
// Determinism:
//   - Components are ordered by their lowest VertexID; members by BFS order.

package inspect

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvheat/bfs"
	"github.com/katalvlaran/lvheat/core"
)

// ErrGraphNil is returned for a nil graph.
var ErrGraphNil = errors.New("inspect: graph is nil")

// Component is one connected region of the network.
type Component struct {
	// Vertices lists the members in BFS order from the lowest id.
	Vertices []core.VertexID
	// Fixed and Sources count boundary and heated members.
	Fixed   int
	Sources int
	// HeatCapacity sums NodeHeatCapacity over the non-Fixed members, J/K.
	HeatCapacity float64
}

// Island reports whether the component has no boundary to exchange heat with.
func (c Component) Island() bool { return c.Fixed == 0 }

// Components returns the connected components of g. Fixed vertices join the
// regions they touch, so a boundary shared by two rooms puts both rooms in
// one component.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return components(g.Topology())
}

// Islands returns the components that contain no Fixed vertex.
func Islands(g *core.Graph) ([]Component, error) {
	all, err := Components(g)
	if err != nil {
		return nil, err
	}

	return islands(all), nil
}

func components(t *core.Topology) ([]Component, error) {
	seen := make([]bool, t.Len())
	var out []Component
	for id := range t.Vertices {
		if seen[id] {
			continue
		}
		res, err := bfs.Walk(t, core.VertexID(id))
		if err != nil {
			return nil, fmt.Errorf("inspect: component of %d: %w", id, err)
		}
		c := Component{Vertices: res.Order}
		for _, m := range res.Order {
			seen[m] = true
			v := t.Vertices[m]
			switch v.Kind() {
			case core.Fixed:
				c.Fixed++
				continue
			case core.Source:
				c.Sources++
			}
			c.HeatCapacity += v.NodeHeatCapacity()
		}
		out = append(out, c)
	}

	return out, nil
}

func islands(all []Component) []Component {
	var out []Component
	for _, c := range all {
		if c.Island() {
			out = append(out, c)
		}
	}
	return out
}
