// Package steady computes the equilibrium temperatures of a thermal network
// directly, without time stepping.
//
// At steady state every non-Fixed vertex balances its conduction against
// its heat generation:
//
//	Σ_j G_ij·(T_j − T_i) + q_i = 0
//
// with G_ij the link conductance used by the simulator (half-thickness
// series rule, core.LinkConductance). Fixed vertices move to the right-hand
// side at their current temperature and Sources contribute their current
// output. The system is stamped into a dense gonum matrix and solved by LU
// factorization, so cost grows as O(n³) in the number of non-Fixed vertices.
//
// The answer is what simulate converges to for constant boundaries and
// sources, which makes Solve a cheap oracle for long transient runs and a
// good initial state for control studies (Apply).
//
// Errors:
//
//	ErrGraphNil  - nil graph.
//	ErrSingular  - an island (no Fixed vertex) or an ill-conditioned system.
package steady
