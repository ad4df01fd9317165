// File: types.go
// Role: Sentinel errors, Options and functional options of Dijkstra.
//
// The weight of a link is its thermal resistance R = 1/G, K/W, where G is
// core.LinkConductance of the two endpoints over the edge area. Parallel
// edges between the same pair are merged first (their conductances add), so
// a "path" is a chain of single resistances in series and its length is the
// series resistance of that chain.
//
// Complexity:
//
//	– Time:  O((V + E) log V) with a lazy min-heap.
//	– Space: O(V + E).
//
// Options:
//
//	– Source:           name of the starting vertex (required).
//	– ReturnPath:       also return the predecessor map.
//	– MaxResistance:    stop expanding beyond this series resistance, K/W.
//	– ThroughFixed:     relax links out of Fixed vertices other than the source.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if no source name was given.
//	– ErrNilGraph         if the graph pointer is nil.
//	– ErrVertexNotFound   if no vertex carries the source name.
//	– ErrBadConductance   if a link conductance is negative or NaN.
//	– ErrBadMaxResistance if MaxResistance is negative or NaN (panic in the option).
//	– ErrNoPath           if PathTo is asked for an unreached vertex.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvheat/core"
)

// Sentinel errors returned by Dijkstra and PathTo.
var (
	// ErrEmptySource indicates that no source vertex name was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex name is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadConductance indicates a link whose conductance is negative or NaN,
	// usually from a negative area, thickness or conductivity.
	ErrBadConductance = errors.New("dijkstra: link conductance is negative or NaN")

	// ErrBadMaxResistance indicates a negative or NaN MaxResistance.
	ErrBadMaxResistance = errors.New("dijkstra: MaxResistance must be non-negative")

	// ErrNoPath indicates the target was not reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// NoVertex marks "no predecessor" in the prev map.
const NoVertex core.VertexID = -1

// Options configures one Dijkstra run.
type Options struct {
	Source        string  // name of the source vertex
	ReturnPath    bool    // return the predecessor map
	MaxResistance float64 // K/W; +Inf means no cap
	ThroughFixed  bool    // expand Fixed vertices other than the source
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// Source names the starting vertex. Required.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxResistance caps the explored series resistance, K/W. Vertices
// farther than max keep +Inf. Panics with ErrBadMaxResistance on a negative
// or NaN argument.
func WithMaxResistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxResistance.Error())
	}
	return func(o *Options) {
		o.MaxResistance = max
	}
}

// WithThroughFixed lets paths continue through Fixed vertices. By default a
// Fixed vertex ends every path that reaches it: its temperature is imposed,
// so heat arriving there does not flow on.
func WithThroughFixed() Option {
	return func(o *Options) {
		o.ThroughFixed = true
	}
}

// DefaultOptions returns the defaults for source: no predecessor map, no
// resistance cap, Fixed vertices terminal.
func DefaultOptions(source string) Options {
	return Options{
		Source:        source,
		MaxResistance: math.Inf(1),
	}
}
