// SPDX-License-Identifier: MIT
//
// File: steady.go
// Role: Conductance-matrix stamping and the LU solve.

package steady

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/inspect"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("steady: graph is nil")

	// ErrSingular indicates the balance equations have no unique solution.
	ErrSingular = errors.New("steady: singular conductance matrix")
)

// Option configures Solve.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger reports system size and conditioning at Debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("steady: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// system is the stamped linear problem G·T = b over the non-Fixed vertices.
type system struct {
	row   map[core.VertexID]int // vertex → unknown index
	ids   []core.VertexID       // unknown index → vertex
	g     *mat.Dense
	b     *mat.VecDense
	fixed int
}

// stampConductance adds a link of conductance c seen from unknown i.
// The opposite side of an internal link is stamped when its own row is built.
func (s *system) stampConductance(i int, other *core.Vertex, otherID core.VertexID, c float64) {
	s.g.Set(i, i, s.g.At(i, i)+c)
	if j, ok := s.row[otherID]; ok {
		s.g.Set(i, j, s.g.At(i, j)-c)
		return
	}
	s.b.SetVec(i, s.b.AtVec(i)+c*other.Temperature())
}

// stampHeat adds a generated heat flow into unknown i.
func (s *system) stampHeat(i int, q float64) {
	s.b.SetVec(i, s.b.AtVec(i)+q)
}

func stamp(t *core.Topology) *system {
	s := &system{row: make(map[core.VertexID]int)}
	for id, v := range t.Vertices {
		if v.Kind() == core.Fixed {
			s.fixed++
			continue
		}
		s.row[core.VertexID(id)] = len(s.ids)
		s.ids = append(s.ids, core.VertexID(id))
	}
	n := len(s.ids)
	if n == 0 {
		return s
	}
	s.g = mat.NewDense(n, n, nil)
	s.b = mat.NewVecDense(n, nil)
	for i, id := range s.ids {
		v := t.Vertices[id]
		for _, l := range t.Links[id] {
			if l.Loop {
				continue
			}
			other := t.Vertices[l.Other]
			s.stampConductance(i, other, l.Other, core.LinkConductance(v, other, l.Area))
		}
		s.stampHeat(i, v.HeatGeneration())
	}

	return s
}

// Solve returns the equilibrium temperature of every non-Fixed vertex,
// keyed by VertexID. Fixed temperatures and Source outputs are read once.
// A graph without non-Fixed vertices yields an empty map.
//
// Steps:
//  1. Reject islands up front (ErrSingular naming the first member).
//  2. Stamp G and b from one Topology snapshot.
//  3. LU-factorize G and solve; a near-singular factorization is ErrSingular.
func Solve(g *core.Graph, opts ...Option) (map[core.VertexID]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	isl, err := inspect.Islands(g)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if len(isl) > 0 {
		first, _ := g.VertexAt(isl[0].Vertices[0])
		return nil, fmt.Errorf("Solve: %d island(s), first containing %q: %w", len(isl), first.Name(), ErrSingular)
	}

	s := stamp(g.Topology())
	out := make(map[core.VertexID]float64, len(s.ids))
	if len(s.ids) == 0 {
		return out, nil
	}

	var lu mat.LU
	lu.Factorize(s.g)
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, s.b); err != nil {
		return nil, fmt.Errorf("Solve: %v: %w", err, ErrSingular)
	}
	o.logger.Debug("steady: solved",
		slog.Int("unknowns", len(s.ids)),
		slog.Int("fixed", s.fixed),
		slog.Float64("condition", lu.Cond()))

	for i, id := range s.ids {
		out[id] = x.AtVec(i)
	}

	return out, nil
}

// Apply writes a solution into the graph. Ids that are Fixed or unknown are
// rejected with the wrapped core error; earlier writes stay applied.
func Apply(g *core.Graph, sol map[core.VertexID]float64) error {
	if g == nil {
		return ErrGraphNil
	}
	for id, t := range sol {
		v, err := g.VertexAt(id)
		if err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
		if err := v.SetTemperature(t); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// SolveAndApply solves g and writes the result into it.
func SolveAndApply(g *core.Graph, opts ...Option) (map[core.VertexID]float64, error) {
	sol, err := Solve(g, opts...)
	if err != nil {
		return nil, err
	}

	return sol, Apply(g, sol)
}
