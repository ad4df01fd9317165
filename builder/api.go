// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Apply runs constructors against an existing graph (house models compose this way).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvheat/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Start every created Free/Source node at the configured temperature.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph.
// Errors are wrapped with "Apply: %w".
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
		cfg.logger.Debug("builder: constructor applied",
			slog.Int("index", i),
			slog.Int("vertices", g.VertexCount()),
			slog.Int("edges", g.EdgeCount()))
	}

	return nil
}

// =============================================================================
// Constructors (declarations) - implemented in impl_*.go
// =============================================================================
//
// Path(n, material, thickness)                 chain of n Free nodes (impl_path.go)
// Grid(rows, cols, material, thickness)        4-neighborhood slab mesh (impl_grid.go)
// Layers(from, to, area, layers...)            series assembly, Parallel groups, Split slabs (impl_layers.go)
// Infiltration(from, to, ach, volume, area)    air-exchange pseudo-node (impl_infiltration.go)
//
// House models (house.go) compose these into complete buildings and return
// handles for controllers: NewHouse, FirstHouse, WallOnly, WallAndCeiling,
// WallCeilingAndInfiltration, SolarHouse.
