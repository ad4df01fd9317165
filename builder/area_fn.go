// Package builder provides area distributions for generated conduction
// edges. A heterogeneous slab (cracks, voids, uneven contact) can be modeled
// by drawing every lateral contact area from a distribution.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// AreaFn produces the conduction area of one generated edge, m².
// Stochastic variants require a non-nil rng and return ErrNeedRandSource
// otherwise. Deterministic for a given seed and call order.
type AreaFn func(rng *rand.Rand) (float64, error)

// ConstantAreaFn returns an AreaFn that always yields a.
// Panics if a <= 0.
func ConstantAreaFn(a float64) AreaFn {
	if a <= 0 {
		panic(fmt.Sprintf("ConstantAreaFn: area must be > 0, got %g", a))
	}

	return func(_ *rand.Rand) (float64, error) {
		return a, nil
	}
}

// UniformAreaFn samples uniformly in [min, max).
// Panics unless 0 < min <= max.
func UniformAreaFn(min, max float64) AreaFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformAreaFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) (float64, error) {
		if rng == nil {
			return 0, ErrNeedRandSource
		}
		if max == min {
			return min, nil
		}

		return min + rng.Float64()*(max-min), nil
	}
}

// NormalAreaFn samples N(mean, stddev) clipped below at floor, so a draw can
// never produce a non-conducting edge.
// Panics if mean <= 0, stddev < 0 or floor <= 0.
func NormalAreaFn(mean, stddev, floor float64) AreaFn {
	if mean <= 0 || stddev < 0 || floor <= 0 {
		panic(fmt.Sprintf("NormalAreaFn: require mean > 0, stddev ≥ 0, floor > 0, got %g, %g, %g", mean, stddev, floor))
	}

	return func(rng *rand.Rand) (float64, error) {
		if rng == nil {
			return 0, ErrNeedRandSource
		}

		return math.Max(floor, rng.NormFloat64()*stddev+mean), nil
	}
}

// WithConstantEdgeArea sets every generated edge to area a.
func WithConstantEdgeArea(a float64) BuilderOption {
	return WithEdgeAreaFn(ConstantAreaFn(a))
}

// WithUniformEdgeArea draws generated edge areas from U[min,max).
func WithUniformEdgeArea(min, max float64) BuilderOption {
	return WithEdgeAreaFn(UniformAreaFn(min, max))
}

// WithNormalEdgeArea draws generated edge areas from N(mean,stddev), clipped at floor.
func WithNormalEdgeArea(mean, stddev, floor float64) BuilderOption {
	return WithEdgeAreaFn(NormalAreaFn(mean, stddev, floor))
}
