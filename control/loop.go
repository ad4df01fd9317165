// SPDX-License-Identifier: MIT
//
// File: loop.go
// Role: Closed-loop run: warm-up, then sense → decide → switch per cycle.
//
// Determinism:
//   - The thermostat reads the sensor only at cycle boundaries, so a run is
//     a pure function of the graph, the options and the weather.
//
// Concurrency:
//   - Run owns the graph, the switch and the clock until it returns.

package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/simulate"
)

// Sentinel errors for Loop configuration.
var (
	ErrGraphNil        = errors.New("control: graph is nil")
	ErrSensorNotFound  = errors.New("control: sensor vertex not in graph")
	ErrSwitchNil       = errors.New("control: switch is nil")
	ErrOptionViolation = errors.New("control: invalid option supplied")
)

// Defaults follow a one-minute control interval of 0.1 s steps, run for a
// day after a long warm-up.
const (
	DefaultTimestep        = 0.1
	DefaultStepsPerControl = 600
	DefaultCycles          = 1440
	DefaultWarmupSteps     = 100000
)

// Sample is what the loop reports after each control interval.
type Sample struct {
	Cycle int
	// Time is the simulated control time at the end of the interval, s.
	Time float64
	// Sensed is the sensor temperature, K.
	Sensed float64
	// On is the switch state decided for the next interval.
	On bool
	// Running is the switch state during the interval just simulated.
	Running bool
	// Power is the HVAC output during that interval, W.
	Power float64
}

// Option configures a Loop.
type Option func(*Loop)

// WithTimestep sets the simulation step, s (> 0).
func WithTimestep(dt float64) Option {
	return func(l *Loop) {
		if dt <= 0 {
			l.err = fmt.Errorf("%w: timestep must be > 0, got %g", ErrOptionViolation, dt)
			return
		}
		l.dt = dt
	}
}

// WithStepsPerControl sets how many steps run between thermostat reads (> 0).
func WithStepsPerControl(n int) Option {
	return func(l *Loop) {
		if n <= 0 {
			l.err = fmt.Errorf("%w: steps per control must be > 0, got %d", ErrOptionViolation, n)
			return
		}
		l.stepsPerControl = n
	}
}

// WithCycles sets the number of control intervals (≥ 0).
func WithCycles(n int) Option {
	return func(l *Loop) {
		if n < 0 {
			l.err = fmt.Errorf("%w: cycles must be ≥ 0, got %d", ErrOptionViolation, n)
			return
		}
		l.cycles = n
	}
}

// WithWarmup sets the number of uncontrolled steps before the first cycle (≥ 0).
// The switch keeps its initial state and the clock stays at zero.
func WithWarmup(steps int) Option {
	return func(l *Loop) {
		if steps < 0 {
			l.err = fmt.Errorf("%w: warm-up must be ≥ 0, got %d", ErrOptionViolation, steps)
			return
		}
		l.warmup = steps
	}
}

// WithClock advances c to the elapsed control time after every interval.
func WithClock(c *Clock) Option {
	return func(l *Loop) {
		if c != nil {
			l.clock = c
		}
	}
}

// WithSchedule shifts the thermostat band per cycle.
func WithSchedule(s Schedule) Option {
	return func(l *Loop) {
		if s != nil {
			l.schedule = s
		}
	}
}

// WithObserver calls fn after every control interval.
func WithObserver(fn func(Sample)) Option {
	return func(l *Loop) {
		if fn != nil {
			l.observe = fn
		}
	}
}

// WithLogger sets the loop's logger; switch events log at Info, cycles at Debug.
func WithLogger(lg *slog.Logger) Option {
	return func(l *Loop) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// WithSimulateOptions forwards options to the underlying simulate.Stepper.
func WithSimulateOptions(opts ...simulate.Option) Option {
	return func(l *Loop) {
		l.simOpts = append(l.simOpts, opts...)
	}
}

// Loop is a configured thermostat control run over one graph.
type Loop struct {
	graph      *core.Graph
	sensor     *core.Vertex
	sw         *Switch
	thermostat Thermostat

	dt              float64
	stepsPerControl int
	cycles          int
	warmup          int
	clock           *Clock
	schedule        Schedule
	observe         func(Sample)
	logger          *slog.Logger
	simOpts         []simulate.Option

	err error
}

// NewLoop validates the wiring and options. The switch is expected to feed
// a Source vertex of g (usually through its Heat method); the sensor is
// the vertex the thermostat reads.
func NewLoop(g *core.Graph, sensor *core.Vertex, sw *Switch, t Thermostat, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(sensor) {
		return nil, ErrSensorNotFound
	}
	if sw == nil {
		return nil, ErrSwitchNil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	l := &Loop{
		graph:           g,
		sensor:          sensor,
		sw:              sw,
		thermostat:      t,
		dt:              DefaultTimestep,
		stepsPerControl: DefaultStepsPerControl,
		cycles:          DefaultCycles,
		warmup:          DefaultWarmupSteps,
		clock:           &Clock{},
		schedule:        func(int) float64 { return 0 },
		observe:         func(Sample) {},
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.err != nil {
		return nil, l.err
	}

	return l, nil
}

// Interval returns the simulated length of one control interval, s.
func (l *Loop) Interval() float64 { return l.dt * float64(l.stepsPerControl) }

// Clock returns the clock the loop advances.
func (l *Loop) Clock() *Clock { return l.clock }

// Run performs the warm-up and the control cycles. The context is checked
// before every cycle; on cancellation Run returns the partial Summary along
// with the context error.
func (l *Loop) Run(ctx context.Context) (*Summary, error) {
	stepper, err := simulate.NewStepper(l.graph, l.dt, append([]simulate.Option{simulate.WithLogger(l.logger)}, l.simOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("control: %w", err)
	}
	l.clock.Set(0)
	if err := stepper.Step(l.warmup); err != nil {
		return nil, fmt.Errorf("control: warm-up: %w", err)
	}
	l.logger.Debug("control: warm-up done",
		slog.Int("steps", l.warmup),
		slog.Float64("sensed", l.sensor.Temperature()))

	sum := newSummary(l.Interval(), l.cycles)
	for i := 0; i < l.cycles; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		running, power := l.sw.On(), l.sw.Heat()
		if err := stepper.Step(l.stepsPerControl); err != nil {
			return sum, fmt.Errorf("control: cycle %d: %w", i, err)
		}
		l.clock.Advance(l.Interval())

		temp := l.sensor.Temperature()
		band := l.thermostat.Shift(l.schedule(i))
		if l.sw.Set(band.Decide(temp, l.sw.On())) {
			l.logger.Info("control: hvac switched",
				slog.Int("cycle", i),
				slog.Bool("on", l.sw.On()),
				slog.Float64("sensed", temp),
				slog.Float64("low", band.Low),
				slog.Float64("high", band.High))
		}
		s := Sample{Cycle: i, Time: l.clock.Now(), Sensed: temp, On: l.sw.On(), Running: running, Power: power}
		sum.add(s)
		l.logger.Debug("control: cycle", slog.Int("cycle", i), slog.Float64("sensed", temp))
		l.observe(s)
	}
	sum.Switches = l.sw.Switches()

	return sum, nil
}
