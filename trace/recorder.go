// SPDX-License-Identifier: MIT
//
// File: recorder.go
// Role: Time series of vertex temperatures and their CSV export.
//
// Concurrency:
//   - Recorder methods are safe for concurrent use; sampling reads vertex
//     temperatures, so it belongs on the goroutine that steps the graph.

package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/katalvlaran/lvheat/control"
	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/simulate"
)

var (
	// ErrNoVertices is returned when a Recorder is built without vertices.
	ErrNoVertices = errors.New("trace: no vertices to record")

	// ErrUnknownSeries is returned for a name the Recorder does not track.
	ErrUnknownSeries = errors.New("trace: unknown series")

	// ErrEmpty is returned when exporting a Recorder without samples.
	ErrEmpty = errors.New("trace: nothing recorded")
)

// Sample is the temperature of every tracked vertex at one time.
type Sample struct {
	// Time is simulated time, s.
	Time float64
	// Values holds temperatures, K, in the Recorder's vertex order.
	Values []float64
}

// Recorder collects Samples for a fixed list of vertices.
type Recorder struct {
	mu       sync.Mutex
	vertices []*core.Vertex
	names    []string
	samples  []Sample
	lastStep int
}

// NewRecorder tracks the given vertices, in order.
func NewRecorder(vs ...*core.Vertex) (*Recorder, error) {
	if len(vs) == 0 {
		return nil, ErrNoVertices
	}
	r := &Recorder{vertices: make([]*core.Vertex, len(vs)), names: make([]string, len(vs)), lastStep: -1}
	for i, v := range vs {
		if v == nil {
			return nil, fmt.Errorf("trace: vertex %d: %w", i, core.ErrNilVertex)
		}
		r.vertices[i] = v
		r.names[i] = v.Name()
	}

	return r, nil
}

// Record samples all tracked vertices at simulated time t.
func (r *Recorder) Record(t float64) {
	values := make([]float64, len(r.vertices))
	for i, v := range r.vertices {
		values[i] = v.Temperature()
	}
	r.mu.Lock()
	r.samples = append(r.samples, Sample{Time: t, Values: values})
	r.mu.Unlock()
}

// Observer returns a simulate.Observer that records once per reported step,
// at time step·dt. Use it with simulate.WithObserver and WithInterval.
func (r *Recorder) Observer(dt float64) simulate.Observer {
	return func(step int, _ *core.Vertex) {
		r.mu.Lock()
		seen := step == r.lastStep
		r.lastStep = step
		r.mu.Unlock()
		if !seen {
			r.Record(float64(step) * dt)
		}
	}
}

// ControlObserver returns a control loop observer that records every cycle.
func (r *Recorder) ControlObserver() func(control.Sample) {
	return func(s control.Sample) { r.Record(s.Time) }
}

// Names returns the tracked vertex names in column order.
func (r *Recorder) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of samples.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

// Samples returns a copy of the recorded samples.
func (r *Recorder) Samples() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sample, len(r.samples))
	for i, s := range r.samples {
		out[i] = Sample{Time: s.Time, Values: append([]float64(nil), s.Values...)}
	}
	return out
}

// Series returns the times and temperatures of the named vertex.
// If several tracked vertices share a name, the first one wins.
func (r *Recorder) Series(name string) (times, values []float64, err error) {
	col := r.column(name)
	if col < 0 {
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownSeries, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	times = make([]float64, len(r.samples))
	values = make([]float64, len(r.samples))
	for i, s := range r.samples {
		times[i], values[i] = s.Time, s.Values[col]
	}
	return times, values, nil
}

func (r *Recorder) column(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}

// WriteCSV writes a header ("time_s" then vertex names) and one row per sample.
func (r *Recorder) WriteCSV(w io.Writer) error {
	samples := r.Samples()
	if len(samples) == 0 {
		return ErrEmpty
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"time_s"}, r.names...)); err != nil {
		return fmt.Errorf("trace: csv header: %w", err)
	}
	row := make([]string, len(r.names)+1)
	for _, s := range samples {
		row[0] = strconv.FormatFloat(s.Time, 'g', -1, 64)
		for i, v := range s.Values {
			row[i+1] = strconv.FormatFloat(v, 'f', 4, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("trace: csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
