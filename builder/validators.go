// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel wrapped via builderErrorf
// when its precondition is violated.
package builder

import "github.com/katalvlaran/lvheat/core"

// validateMin ensures that the provided integer got is ≥ min.
// Returns "<Method>: <what> must be ≥ <min>, got <got>: builder: parameter too small".
// Complexity: O(1) time and space.
func validateMin(method, what string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%s must be ≥ %d, got %d: %w", what, min, got, ErrTooFewVertices)
	}

	return nil
}

// validateFraction enforces f ∈ (0,1]. A zero fraction is resolved to 1
// before validation by resolveFraction.
func validateFraction(method, layer string, f float64) error {
	if f <= 0 || f > 1 {
		return builderErrorf(method, "layer %q: fraction %g not in (0,1]: %w", layer, f, ErrBadFraction)
	}

	return nil
}

// validateEndpoints rejects nil assembly endpoints.
func validateEndpoints(method string, from, to *core.Vertex) error {
	if from == nil || to == nil {
		return builderErrorf(method, "%w", ErrNilVertex)
	}

	return nil
}
