package inspect

import (
	"fmt"

	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/dijkstra"
)

// Bridge is the single chain of least thermal resistance between two
// vertices: the weakest route through an envelope.
type Bridge struct {
	Vertices []core.VertexID
	Names    []string
	// Resistance is the series resistance of the chain, K/W.
	Resistance float64
}

// Conductance is 1/Resistance, W/K.
func (b *Bridge) Conductance() float64 { return 1 / b.Resistance }

// ThermalBridge finds the least-resistance chain from the vertex named from
// to the one named to. Fixed vertices other than from end a chain.
//
// Errors: ErrGraphNil, core.ErrVertexNotFound for an unknown to, and the
// dijkstra errors (dijkstra.ErrNoPath when to is not reached).
func ThermalBridge(g *core.Graph, from, to string) (*Bridge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	target, ok := g.Lookup(to)
	if !ok {
		return nil, fmt.Errorf("ThermalBridge: %q: %w", to, core.ErrVertexNotFound)
	}
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(from), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("ThermalBridge: %w", err)
	}
	src, _ := g.Lookup(from)
	srcID, err := g.VertexID(src)
	if err != nil {
		return nil, err
	}
	dstID, err := g.VertexID(target)
	if err != nil {
		return nil, err
	}
	path, err := dijkstra.PathTo(prev, srcID, dstID)
	if err != nil {
		return nil, fmt.Errorf("ThermalBridge(%q→%q): %w", from, to, err)
	}

	b := &Bridge{Vertices: path, Names: make([]string, len(path)), Resistance: dist[dstID]}
	for i, id := range path {
		v, err := g.VertexAt(id)
		if err != nil {
			return nil, err
		}
		b.Names[i] = v.Name()
	}

	return b, nil
}
