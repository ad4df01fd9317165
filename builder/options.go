// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"log/slog"
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithArea sets the default node area, m². Panics if a <= 0.
func WithArea(a float64) BuilderOption {
	if a <= 0 {
		panic("builder: WithArea(a<=0)")
	}
	return func(c *builderConfig) {
		c.area = a
	}
}

// WithInitialTemperature sets the starting temperature of created
// Free and Source nodes, K. Any value is accepted.
func WithInitialTemperature(t float64) BuilderOption {
	return func(c *builderConfig) {
		c.temperature = t
	}
}

// WithNamePrefix prepends prefix to every node name created by the build.
func WithNamePrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.prefix = prefix
	}
}

// WithNameScheme sets the generator for indexed node names (Path, Grid rows).
// Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithLogger routes constructor records to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithRand provides an explicit RNG for stochastic area functions.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEdgeAreaFn overrides the conduction area of edges emitted by Path and
// Grid. Panics on nil.
func WithEdgeAreaFn(fn AreaFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeAreaFn(nil)")
	}
	return func(c *builderConfig) {
		c.areaFn = fn
	}
}
