package inspect

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvheat/core"
)

// Report is the combined diagnosis of one graph.
type Report struct {
	Stats      *core.GraphStats
	Components []Component
	Islands    []Component

	// StableTimestep is the explicit-Euler bound, s (+Inf if nothing conducts).
	StableTimestep float64
	// Stiffest is the vertex that sets the bound, or NoVertex.
	Stiffest core.VertexID

	names []string
}

// Inspect compiles g once and gathers Stats, components, islands and the
// stable time step.
func Inspect(g *core.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	t := g.Topology()
	comps, err := components(t)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Stats:      g.Stats(),
		Components: comps,
		Islands:    islands(comps),
		names:      make([]string, t.Len()),
	}
	r.StableTimestep, r.Stiffest = stableTimestep(t)
	for i, v := range t.Vertices {
		r.names[i] = v.Name()
	}

	return r, nil
}

// Stable reports whether dt is within the explicit-Euler bound.
func (r *Report) Stable(dt float64) bool {
	return dt <= r.StableTimestep
}

// Name returns the name of vertex id as of the inspection.
func (r *Report) Name(id core.VertexID) string {
	if id < 0 || int(id) >= len(r.names) {
		return ""
	}
	return r.names[id]
}

// WriteTo renders the report as an aligned text table.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 0, 2, ' ', 0)
	s := r.Stats
	fmt.Fprintf(tw, "vertices\t%d\t(free %d, fixed %d, source %d)\n", s.VertexCount, s.FreeCount, s.FixedCount, s.SourceCount)
	fmt.Fprintf(tw, "edges\t%d\t(loops %d, parallel %d)\n", s.EdgeCount, s.LoopCount, s.ParallelCount)
	fmt.Fprintf(tw, "heat capacity\t%s\t\n", humanize.SIWithDigits(s.TotalHeatCapacity, 3, "J/K"))
	fmt.Fprintf(tw, "components\t%d\t(islands %d)\n", len(r.Components), len(r.Islands))
	if math.IsInf(r.StableTimestep, 1) {
		fmt.Fprintf(tw, "stable dt\tunbounded\t\n")
	} else {
		fmt.Fprintf(tw, "stable dt\t%s\t(set by %q)\n", humanize.SIWithDigits(r.StableTimestep, 3, "s"), r.Name(r.Stiffest))
	}
	for i, c := range r.Islands {
		first := NoVertex
		if len(c.Vertices) > 0 {
			first = c.Vertices[0]
		}
		fmt.Fprintf(tw, "island %d\t%d vertices\t(from %q, sources %d)\n", i, len(c.Vertices), r.Name(first), c.Sources)
	}
	if err := tw.Flush(); err != nil {
		return cw.n, err
	}

	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err != nil && c.err == nil {
		c.err = err
	}
	return n, err
}
