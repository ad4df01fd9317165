// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus gauges and counters for a running control loop.

package trace

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvheat/control"
	"github.com/katalvlaran/lvheat/core"
)

const metricsNamespace = "lvheat"

// Metrics holds the live view of one simulation.
//
// Gauges:
//   - lvheat_vertex_temperature_kelvin{vertex}
//   - lvheat_hvac_on (1 or 0)
//   - lvheat_simulated_seconds
//
// Counters:
//   - lvheat_control_cycles_total
//   - lvheat_hvac_switches_total
type Metrics struct {
	Temperature      *prometheus.GaugeVec
	HVACOn           prometheus.Gauge
	SimulatedSeconds prometheus.Gauge
	Cycles           prometheus.Counter
	Switches         prometheus.Counter

	vertices []*core.Vertex
	lastOn   *bool
}

// NewMetrics registers the collectors on reg and exports the temperatures
// of vs. Registering twice on one registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer, vs ...*core.Vertex) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Temperature: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "vertex_temperature_kelvin",
			Help:      "Current temperature of a tracked vertex in kelvin",
		}, []string{"vertex"}),
		HVACOn: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "hvac_on",
			Help:      "1 while the HVAC unit runs, 0 otherwise",
		}),
		SimulatedSeconds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "simulated_seconds",
			Help:      "Simulated control time in seconds",
		}),
		Cycles: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "control",
			Name:      "cycles_total",
			Help:      "Completed control intervals",
		}),
		Switches: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "hvac",
			Name:      "switches_total",
			Help:      "HVAC on/off transitions",
		}),
		vertices: append([]*core.Vertex(nil), vs...),
	}
}

// ObserveVertices sets the temperature gauge of every tracked vertex.
func (m *Metrics) ObserveVertices() {
	for _, v := range m.vertices {
		m.Temperature.WithLabelValues(v.Name()).Set(v.Temperature())
	}
}

// Observe updates everything from one control sample.
func (m *Metrics) Observe(s control.Sample) {
	m.ObserveVertices()
	m.SimulatedSeconds.Set(s.Time)
	m.Cycles.Inc()
	on := 0.0
	if s.On {
		on = 1
	}
	m.HVACOn.Set(on)
	if m.lastOn != nil && *m.lastOn != s.On {
		m.Switches.Inc()
	}
	m.lastOn = &s.On
}

// Tee fans one control sample out to several observers.
func Tee(fns ...func(control.Sample)) func(control.Sample) {
	return func(s control.Sample) {
		for _, fn := range fns {
			if fn != nil {
				fn(s)
			}
		}
	}
}
