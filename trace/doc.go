// Package trace records what a simulation did and publishes it.
//
//   - Recorder samples the temperatures of chosen vertices over simulated
//     time. It plugs into simulate (Observer) and control (ControlObserver)
//     and exports CSV or a gonum/plot chart (WritePlot).
//   - Metrics exposes live Prometheus gauges and counters for a running
//     control loop on a caller-supplied registry.
//
// Recording never changes the simulation; both sinks only read vertex
// temperatures after a step has been committed.
package trace
