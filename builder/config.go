// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • area        = DefaultArea (1 m²)
//   • temperature = DefaultInitialTemperature (293.15 K)
//   • prefix      = ""
//   • nameFn      = DefaultNameFn ("0","1","2",...)
//   • rng         = nil (pure/deterministic unless seeded)
//   • areaFn      = nil (edges use the node area)
//   • logger      = discard

package builder

import (
	"log/slog"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// area is the default node area for Path and Grid, m².
	area float64
	// temperature is the initial temperature of created Free/Source nodes, K.
	temperature float64
	// prefix is prepended to every created node name.
	prefix string
	// nameFn names the i-th node of Path/Grid style constructors.
	nameFn NameFn
	// rng for stochastic area functions; nil means no randomness.
	rng *rand.Rand
	// areaFn overrides the conduction area of Path/Grid edges when non-nil.
	areaFn AreaFn
	// logger receives one record per constructor.
	logger *slog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		area:        DefaultArea,
		temperature: DefaultInitialTemperature,
		nameFn:      DefaultNameFn,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// name composes the configured prefix with a local node name.
func (c builderConfig) name(local string) string {
	return c.prefix + local
}

// edgeArea returns the conduction area for a generated edge.
func (c builderConfig) edgeArea(fallback float64) (float64, error) {
	if c.areaFn == nil {
		return fallback, nil
	}
	return c.areaFn(c.rng)
}
