package inspect

import (
	"math"

	"github.com/katalvlaran/lvheat/core"
)

// NoVertex marks "none" in VertexID results.
const NoVertex core.VertexID = -1

// StableTimestep returns the largest time step, s, for which explicit Euler
// stays stable on g: min over non-Fixed vertices of C / ΣG, where C is the
// node heat capacity and ΣG the sum of its link conductances. It also
// returns the vertex attaining the minimum.
//
// Vertices without conducting links impose no bound; when no vertex does,
// the result is (+Inf, NoVertex).
func StableTimestep(g *core.Graph) (float64, core.VertexID, error) {
	if g == nil {
		return 0, NoVertex, ErrGraphNil
	}
	dt, id := stableTimestep(g.Topology())

	return dt, id, nil
}

func stableTimestep(t *core.Topology) (float64, core.VertexID) {
	best, at := math.Inf(1), NoVertex
	for id, v := range t.Vertices {
		if v.Kind() == core.Fixed {
			continue
		}
		sum := 0.0
		for _, l := range t.Links[id] {
			if l.Loop {
				continue
			}
			sum += core.LinkConductance(v, t.Vertices[l.Other], l.Area)
		}
		if sum <= 0 {
			continue
		}
		if bound := v.NodeHeatCapacity() / sum; bound < best {
			best, at = bound, core.VertexID(id)
		}
	}

	return best, at
}
