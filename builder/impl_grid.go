// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// impl_grid.go - implementation of Grid(rows, cols, material, thickness) constructor.
//
// Canonical model:
//   • 2D orthogonal mesh with 4-neighborhood (right & bottom neighbors per cell).
//   • Node names use the fixed scheme prefix+"r,c" (row-major order).
//     This is a deliberate exception to cfg.nameFn to keep coordinates explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Every cell is a Free node of area cfg.area.
//   • Edges to right (r,c+1) and bottom (r+1,c) neighbors where they exist,
//     area from cfg.areaFn when configured, else cfg.area.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(rows*cols) for the cell table.
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present,
//     so a seeded AreaFn draws in a fixed sequence.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvheat/core"
)

// GridCellName is the local name Grid gives the cell at row r, column c.
func GridCellName(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor that builds a rows×cols slab mesh.
func Grid(rows, cols int, m core.Material, thickness float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cells := make([]*core.Vertex, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := newNode(cfg, nodeSpec{
					name:      GridCellName(r, c),
					material:  m,
					thickness: thickness,
					area:      cfg.area,
				})
				if err := addNode(g, MethodGrid, v); err != nil {
					return err
				}
				cells[r*cols+c] = v
			}
		}

		link := func(u, v *core.Vertex) error {
			area, err := cfg.edgeArea(cfg.area)
			if err != nil {
				return builderErrorf(MethodGrid, "%s-%s: %w", u.Name(), v.Name(), err)
			}
			return connect(g, MethodGrid, u, v, area)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r*cols+c]
				if c+1 < cols {
					if err := link(u, cells[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, cells[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
