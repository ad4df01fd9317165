// Package inspect diagnoses a thermal network before it is simulated.
//
// A network compiles and runs whatever its shape, so mistakes in assembly
// show up only as odd numbers. inspect reports the structure:
//
//   - Components: connected regions in first-seen order (package bfs).
//   - Islands: components without any Fixed vertex. Heat injected into an
//     island never leaves, so its temperature drifts without bound when it
//     holds a Source, and a steady-state solve is singular.
//   - StableTimestep: the explicit-Euler bound min C/ΣG over non-Fixed
//     vertices. Above it the explicit update overshoots equilibrium, and
//     well above it the simulation diverges. The simulator never checks
//     it; callers decide.
//   - Inspect: all of the above plus core.Stats in one Report.
//   - ThermalBridge: the chain of least series resistance between two
//     vertices (package dijkstra), e.g. the studs of an insulated wall.
//
// Everything here only reads the graph and never changes a temperature.
package inspect
