// File: simulate.go
// Role: Compiled stepper (Phase A compute, Phase B commit) and the one-shot Run.
//
// Determinism:
//   - Phase A reads only the frozen cur buffer, so the visit order and the
//     worker count never change a result.
//
// Concurrency:
//   - A Stepper owns its graph's temperatures for as long as it runs.
//   - With Workers > 1 only the per-vertex arithmetic is parallel; functors
//     (boundary temperatures, heat generation) are evaluated sequentially.

package simulate

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvheat/core"
)

// coupling is one precomputed conduction term of a vertex:
// q += (cur[other] - cur[self]) · coef.
type coupling struct {
	other int
	coef  float64
}

// Stepper advances one graph over and over with a fixed time step.
// The topology is compiled once by NewStepper; structural changes made to the
// graph afterwards are not seen.
//
// Functors are sampled once per step: every Fixed vertex's TemperatureFunc
// and every Source vertex's HeatFunc is called exactly once, before Phase A,
// and that value serves all of the vertex's links in the step. A functor
// that keeps state (a call counter, a random draw) therefore advances once
// per step, not once per incident edge.
type Stepper struct {
	dt   float64
	opts Options
	topo *core.Topology

	active   []int        // non-Fixed ids in Phase A visit order
	fixed    []int        // Fixed ids
	sources  []int        // Source ids
	links    [][]coupling // per id
	capacity []float64    // NodeHeatCapacity per id
	heat     []float64    // per id, refreshed once per step for sources

	cur, next []float64

	steps int
}

// NewStepper compiles g for repeated stepping with time step dt seconds.
//
// Implementation:
//   - Stage 1: Apply options; surface any recorded option error.
//   - Stage 2: Snapshot g.Topology(); validate the visit order.
//   - Stage 3: Precompute, for every non-Fixed vertex v and non-loop link to
//     u, the coefficient core.LinkConductance(v, u, area).
//
// Complexity: O(V + E).
func NewStepper(g *core.Graph, dt float64, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	topo := g.Topology()
	n := topo.Len()
	order, err := visitOrder(o.Order, n)
	if err != nil {
		return nil, err
	}

	s := &Stepper{
		dt:       dt,
		opts:     o,
		topo:     topo,
		links:    make([][]coupling, n),
		capacity: make([]float64, n),
		heat:     make([]float64, n),
		cur:      make([]float64, n),
		next:     make([]float64, n),
	}
	for _, id := range order {
		switch topo.Vertices[id].Kind() {
		case core.Fixed:
			s.fixed = append(s.fixed, id)
		case core.Source:
			s.sources = append(s.sources, id)
			s.active = append(s.active, id)
		default:
			s.active = append(s.active, id)
		}
	}
	for _, id := range s.active {
		v := topo.Vertices[id]
		s.capacity[id] = v.NodeHeatCapacity()
		links := make([]coupling, 0, len(topo.Links[id]))
		for _, l := range topo.Links[id] {
			if l.Loop {
				continue
			}
			coef := core.LinkConductance(v, topo.Vertices[l.Other], l.Area)
			links = append(links, coupling{other: int(l.Other), coef: coef})
		}
		s.links[id] = links
	}

	return s, nil
}

// visitOrder expands an explicit order or returns 0..n-1.
func visitOrder(order []core.VertexID, n int) ([]int, error) {
	out := make([]int, n)
	if order == nil {
		for i := range out {
			out[i] = i
		}
		return out, nil
	}
	if len(order) != n {
		return nil, fmt.Errorf("%w: visit order has %d ids, graph has %d vertices", ErrOptionViolation, len(order), n)
	}
	seen := make([]bool, n)
	for i, id := range order {
		if id < 0 || int(id) >= n || seen[id] {
			return nil, fmt.Errorf("%w: visit order is not a permutation (id %d at %d)", ErrOptionViolation, id, i)
		}
		seen[id] = true
		out[i] = int(id)
	}

	return out, nil
}

// Step advances the graph by n time steps and writes the committed state
// back into the vertices after every step.
//
// Vertex temperatures are reloaded at the start of each call, so callers may
// edit Free/Source temperatures between calls.
//
// Errors: ErrNegativeSteps.
func (s *Stepper) Step(n int) error {
	if n < 0 {
		return fmt.Errorf("Step(%d): %w", n, ErrNegativeSteps)
	}
	for _, id := range s.active {
		s.cur[id] = s.topo.Vertices[id].Temperature()
	}

	interval := s.opts.Interval
	if interval == 0 {
		interval = n/100 + 1
	}
	log := s.opts.Logger
	log.Debug("simulate: start", slog.Int("steps", n), slog.Float64("dt", s.dt),
		slog.Int("vertices", s.topo.Len()), slog.Int("workers", s.opts.Workers))

	for i := 0; i < n; i++ {
		if err := s.step(); err != nil {
			return fmt.Errorf("Step: %w", err)
		}
		s.steps++
		if i%interval == 0 {
			s.report(s.steps)
		}
	}
	log.Debug("simulate: done", slog.Int("total_steps", s.steps), slog.Float64("elapsed_s", s.Elapsed()))

	return nil
}

// step performs one Phase A / Phase B cycle.
func (s *Stepper) step() error {
	// Inputs of this step: boundary temperatures and source outputs,
	// each functor invoked exactly once.
	for _, id := range s.fixed {
		s.cur[id] = s.topo.Vertices[id].Temperature()
	}
	for _, id := range s.sources {
		s.heat[id] = s.topo.Vertices[id].HeatGeneration()
	}

	// Phase A: compute next from the frozen cur buffer.
	if err := s.compute(); err != nil {
		return err
	}

	// Phase B: commit.
	for _, id := range s.active {
		v := s.topo.Vertices[id]
		s.cur[id] = s.next[id]
		if err := v.SetNextTemperature(s.next[id]); err != nil {
			return err
		}
		if err := v.SetTemperature(s.next[id]); err != nil {
			return err
		}
	}

	return nil
}

// compute runs Phase A sequentially or on Workers goroutines.
func (s *Stepper) compute() error {
	w := s.opts.Workers
	if w <= 1 || len(s.active) < 2*w {
		s.computeRange(s.active)
		return nil
	}

	var eg errgroup.Group
	chunk := (len(s.active) + w - 1) / w
	for lo := 0; lo < len(s.active); lo += chunk {
		part := s.active[lo:min(lo+chunk, len(s.active))]
		eg.Go(func() error {
			s.computeRange(part)
			return nil
		})
	}

	return eg.Wait()
}

// computeRange writes next[id] for each id; it reads cur and heat only.
func (s *Stepper) computeRange(ids []int) {
	for _, id := range ids {
		t := s.cur[id]
		q := 0.0
		for _, c := range s.links[id] {
			q += (s.cur[c.other] - t) * c.coef
		}
		q += s.heat[id]
		s.next[id] = t + s.dt*q/s.capacity[id]
	}
}

// report notifies the observer and logs progress for global step i;
// it never touches buffers.
func (s *Stepper) report(i int) {
	log := s.opts.Logger
	log.Debug("simulate: progress", slog.Int("step", i), slog.Float64("elapsed_s", s.Elapsed()))
	if !s.opts.Verbose && s.opts.Observer == nil {
		return
	}
	for _, v := range s.topo.Vertices {
		if s.opts.Verbose {
			log.Info("simulate: vertex",
				slog.Int("step", i),
				slog.String("name", v.Name()),
				slog.String("kind", v.Kind().String()),
				slog.Float64("temperature", v.Temperature()))
		}
		if s.opts.Observer != nil {
			s.opts.Observer(i, v)
		}
	}
}

// Steps returns the number of steps executed so far.
func (s *Stepper) Steps() int { return s.steps }

// Elapsed returns the simulated time so far, s.
func (s *Stepper) Elapsed() float64 { return float64(s.steps) * s.dt }

// Timestep returns dt, s.
func (s *Stepper) Timestep() float64 { return s.dt }

// Run advances g by steps explicit time steps of timestepSeconds each.
// The effect is entirely on vertex temperatures.
//
// No numeric checks are performed: an unstable time step yields growing or
// oscillating temperatures (see inspect.StableTimestep).
//
// Errors: ErrGraphNil, ErrNegativeSteps, ErrOptionViolation.
func Run(g *core.Graph, timestepSeconds float64, steps int, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if steps < 0 {
		return fmt.Errorf("Run(%d): %w", steps, ErrNegativeSteps)
	}
	s, err := NewStepper(g, timestepSeconds, opts...)
	if err != nil {
		return err
	}

	return s.Step(steps)
}
