// Package simulate advances the temperatures of a core.Graph with an explicit
// (forward Euler) finite-difference scheme.
package simulate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvheat/core"
)

// Sentinel errors for simulation runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("simulate: graph is nil")

	// ErrNegativeSteps is returned when a negative step count is requested.
	ErrNegativeSteps = errors.New("simulate: step count is negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")
)

// Observer receives the global step index and a vertex after a reporting
// step has been committed. It must not mutate the vertex.
type Observer func(step int, v *core.Vertex)

// Option configures a run via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds parameters and callbacks that customize a run.
// None of them can change the computed temperatures.
type Options struct {
	// Logger receives progress records. Defaults to a discarding logger.
	Logger *slog.Logger

	// Verbose logs every vertex on each reporting step.
	Verbose bool

	// Observer, when non-nil, is called for every vertex on each reporting step.
	Observer Observer

	// Interval is the number of steps between reports.
	// 0 means steps/100+1 for the steps requested in one call.
	Interval int

	// Order is an explicit Phase A visit order (a permutation of all
	// VertexIDs). Nil means VertexID order.
	Order []core.VertexID

	// Workers > 1 splits Phase A across that many goroutines.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a discarding logger, no observer,
// automatic report interval, natural order and a single worker.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.DiscardHandler),
		Workers: 1,
	}
}

// WithLogger routes progress records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVerbose toggles per-vertex progress logging.
func WithVerbose(verbose bool) Option {
	return func(o *Options) {
		o.Verbose = verbose
	}
}

// WithObserver registers fn as the progress observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithInterval fixes the number of steps between reports.
//
//	n > 0: report every n steps
//	n == 0: automatic (steps/100+1)
//	n < 0: invalid option → ErrOptionViolation
func WithInterval(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: interval cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Interval = n
	}
}

// WithVisitOrder sets the Phase A traversal order. The slice must be a
// permutation of the graph's VertexIDs; this is checked when the Stepper is
// built. Results never depend on it.
func WithVisitOrder(order []core.VertexID) Option {
	return func(o *Options) {
		o.Order = append([]core.VertexID(nil), order...)
	}
}

// WithWorkers runs Phase A on n goroutines.
//
//	n >= 1: that many workers (1 = sequential)
//	n == 0: sequential
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}
