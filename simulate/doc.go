// Package simulate is the explicit finite-difference engine of lvheat.
//
// What
//
//   - Advances every non-Fixed vertex of a core.Graph by forward Euler:
//     next = T + dt · q / C, with C = ρ·cp·area·thickness.
//   - q sums conduction from every non-loop incident edge plus, for Source
//     vertices, the heat-generation functor (evaluated once per step).
//   - Each edge conducts through the series combination of two half-node
//     resistances:
//
//     effectiveK = h_v / (h_u/k_u + h_v/k_v)
//     q         += (T_u − T_v) · effectiveK · area / h_v
//
//     where h is half the node thickness. The resulting conductance
//     area / (h_u/k_u + h_v/k_v) is symmetric, so energy is conserved edge by edge.
//
// Two phases per step
//
//	Phase A (compute): next[v] from the frozen buffer of the previous step.
//	Phase B (commit):  T[v] := next[v] for all non-Fixed v, written back to
//	                   the vertices.
//
// Phase B starts only after Phase A completed for every vertex, so results do
// not depend on the visit order (WithVisitOrder) or on parallelism
// (WithWorkers). Fixed vertices are read through their TemperatureFunc once
// per step and never written.
//
// Limits
//
//	No time-step selection and no divergence detection. A step above roughly
//	min C/ΣG oscillates or blows up; inspect.StableTimestep reports that bound.
//	No cancellation: the step count is the only bound.
//
// Usage
//
//	err := simulate.Run(g, 1.0, 3600,
//	    simulate.WithLogger(logger),
//	    simulate.WithWorkers(4),
//	)
//
//	// Repeated runs over the same compiled topology (control loops):
//	st, err := simulate.NewStepper(g, 0.1)
//	for cycle := 0; cycle < n; cycle++ {
//	    _ = st.Step(600)
//	    // read sensors, flip switches
//	}
//
// Errors
//
//	ErrGraphNil, ErrNegativeSteps, ErrOptionViolation.
package simulate
