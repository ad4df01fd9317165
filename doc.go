// Package lvheat is an in-memory toolkit for lumped-node transient heat
// conduction: build a thermal network, step it with an explicit finite
// difference scheme, and drive it with weather and a thermostat.
//
// 🚀 What is in the box?
//
//	• Core primitives: materials, Free / Fixed / Source vertices, conduction edges
//	• Builders: rods, slab grids, layered wall assemblies, infiltration, whole houses
//	• Simulation: a compiled Jacobi stepper with observers and optional workers
//	• Diagnostics: components, islands and the stable explicit time step
//	• Equilibrium: a direct steady-state solve of the conductance system
//	• Control: diurnal weather, a switchable HVAC unit and a dead-band thermostat
//	• Tracing: CSV, gonum/plot charts and Prometheus gauges
//	• Scenarios: YAML files run by the heatsim command
//
// ✨ Why lvheat?
//
//   - Deterministic – every step reads one frozen buffer and writes another
//   - Small API – a graph, a time step and a step count are enough to run
//   - Physical units throughout – K, W, J/K, m, m²
//
// Packages:
//
//	core/      — Graph, Vertex, Edge, Material and the compiled Topology
//	builder/   — Constructor-based network assembly and the house models
//	simulate/  — Run and the reusable Stepper
//	bfs/       — breadth-first traversal over a thermal graph
//	dijkstra/  — least-resistance paths between vertices
//	inspect/   — components, islands, stable time step, bridges, report
//	steady/    — equilibrium temperatures via gonum/mat
//	control/   — Weather, Clock, Switch, Thermostat and the control Loop
//	trace/     — Recorder, plots and Prometheus metrics
//	scenario/  — YAML scenarios built into runnable models
//	cmd/heatsim — the command line front end
//
// Quick ASCII example:
//
//	outside ═ sheathing ═ foam ═ paneling ═ room (800 W)
//	 (fixed)                                (source)
//
// is a Fixed boundary and a heated room joined by a three-layer wall.
//
//	go install github.com/katalvlaran/lvheat/cmd/heatsim@latest
package lvheat
