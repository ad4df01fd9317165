// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w ("Layers: layer 2 \"stud\": ...").
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...) and distribution factories (...AreaFn).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, split)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNoLayers indicates that an assembly or a parallel group has no layers.
var ErrNoLayers = errors.New("builder: no layers")

// ErrBadFraction indicates an area fraction outside (0,1].
var ErrBadFraction = errors.New("builder: area fraction out of range")

// ErrNilVertex indicates that an assembly endpoint was nil.
var ErrNilVertex = errors.New("builder: endpoint vertex is nil")

// ErrNeedRandSource indicates that a stochastic area function needs a seeded
// *rand.Rand (WithSeed or WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the core graph rejected an insertion or
// that a nil Constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
// Use %w in format to keep the sentinel reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
