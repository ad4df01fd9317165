package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/core"
)

// MeshSpec is a uniform rod ("path") or slab ("grid") of free cells,
// joined to declared nodes through Links.
//
// Cells are named "<name> <local>": the local name of a grid cell is
// "row,col"; rod cells count "0", "1", ... or, with names: letters,
// "A", "B", ...
type MeshSpec struct {
	Name      string  `yaml:"name"`
	Kind      string  `yaml:"kind"` // path or grid
	Material  string  `yaml:"material"`
	Thickness float64 `yaml:"thickness"` // m, per cell
	CellArea  float64 `yaml:"cell_area"` // m²
	Count     int     `yaml:"count,omitempty"`
	Rows      int     `yaml:"rows,omitempty"`
	Cols      int     `yaml:"cols,omitempty"`
	Names     string  `yaml:"names,omitempty"` // decimal (default) or letters; rods only
	// Temperature is the initial temperature of every cell; 0 keeps the
	// builder default.
	Temperature float64    `yaml:"temperature,omitempty"`
	EdgeArea    *AreaSpec  `yaml:"edge_area,omitempty"`
	Links       []LinkSpec `yaml:"links,omitempty"`
}

// AreaSpec draws the contact area of every cell-to-cell edge.
type AreaSpec struct {
	Kind   string  `yaml:"kind"` // constant, uniform, normal
	Value  float64 `yaml:"value,omitempty"`
	Min    float64 `yaml:"min,omitempty"`
	Max    float64 `yaml:"max,omitempty"`
	Mean   float64 `yaml:"mean,omitempty"`
	Stddev float64 `yaml:"stddev,omitempty"`
	Floor  float64 `yaml:"floor,omitempty"`
	Seed   int64   `yaml:"seed,omitempty"`
}

// LinkSpec joins a declared node to one cell of the mesh.
type LinkSpec struct {
	Node string  `yaml:"node"`
	Cell string  `yaml:"cell"` // local cell name
	Area float64 `yaml:"area"`
}

// cells lists the local cell names of a valid mesh in creation order.
func (m MeshSpec) cells() []string {
	var out []string
	switch m.Kind {
	case "grid":
		for r := 0; r < m.Rows; r++ {
			for c := 0; c < m.Cols; c++ {
				out = append(out, builder.GridCellName(r, c))
			}
		}
	case "path":
		name := builder.DefaultNameFn
		if m.Names == "letters" {
			name = builder.ExcelColumnNameFn
		}
		for i := 0; i < m.Count; i++ {
			out = append(out, name(i))
		}
	}

	return out
}

// cellName is the graph name of a local cell.
func (m MeshSpec) cellName(local string) string {
	return m.Name + " " + local
}

// options returns the builder options that shape the mesh; they are applied
// after the caller's options.
func (m MeshSpec) options() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithArea(m.CellArea)}
	if m.Kind == "path" && m.Names != "letters" {
		opts = append(opts, builder.WithNamePrefix(""), builder.WithLabeledNames(m.Name+" "))
	} else {
		opts = append(opts, builder.WithNamePrefix(m.Name+" "))
		if m.Names == "letters" {
			opts = append(opts, builder.WithExcelColumnNames())
		}
	}
	if m.Temperature != 0 {
		opts = append(opts, builder.WithInitialTemperature(m.Temperature))
	}
	if a := m.EdgeArea; a != nil {
		switch a.Kind {
		case "constant":
			opts = append(opts, builder.WithConstantEdgeArea(a.Value))
		case "uniform":
			opts = append(opts, builder.WithUniformEdgeArea(a.Min, a.Max), builder.WithSeed(a.Seed))
		case "normal":
			opts = append(opts, builder.WithNormalEdgeArea(a.Mean, a.Stddev, a.Floor), builder.WithSeed(a.Seed))
		}
	}

	return opts
}

// buildMesh adds the cells of m to g and connects its links.
func (s *Scenario) buildMesh(g *core.Graph, m MeshSpec, byName map[string]*core.Vertex, opts []builder.BuilderOption) error {
	mat := s.material(m.Material)
	var con builder.Constructor
	if m.Kind == "grid" {
		con = builder.Grid(m.Rows, m.Cols, mat, m.Thickness)
	} else {
		con = builder.Path(m.Count, mat, m.Thickness)
	}
	all := append(append([]builder.BuilderOption(nil), opts...), m.options()...)
	if err := builder.Apply(g, all, con); err != nil {
		return fmt.Errorf("mesh %q: %w", m.Name, err)
	}

	for _, l := range m.Links {
		cell, ok := g.Lookup(m.cellName(l.Cell))
		if !ok {
			return fmt.Errorf("mesh %q: cell %q: %w", m.Name, l.Cell, core.ErrVertexNotFound)
		}
		if _, err := g.Connect(byName[l.Node], cell, l.Area); err != nil {
			return fmt.Errorf("mesh %q: link %q: %w", m.Name, l.Node, err)
		}
	}

	return nil
}

// checkMeshes validates the meshes and adds their cell names to vertices.
func (s *Scenario) checkMeshes(bad func(string, ...interface{}), known func(string) bool, nodes map[string]NodeSpec, vertices map[string]bool) {
	seen := make(map[string]bool, len(s.Meshes))
	for i, m := range s.Meshes {
		where := fmt.Sprintf("meshes[%d]", i)
		switch {
		case m.Name == "":
			bad("%s: name is required", where)
		case seen[m.Name]:
			bad("%s: duplicate name %q", where, m.Name)
		}
		seen[m.Name] = true

		switch m.Kind {
		case "grid":
			if m.Rows < builder.MinGridDim || m.Cols < builder.MinGridDim {
				bad("%s: rows and cols must be >= %d", where, builder.MinGridDim)
			}
			if m.Names != "" {
				bad("%s: names apply to path meshes only", where)
			}
		case "path":
			if m.Count < builder.MinPathNodes {
				bad("%s: count must be >= %d", where, builder.MinPathNodes)
			}
			if m.Names != "" && m.Names != "decimal" && m.Names != "letters" {
				bad("%s: unknown names %q", where, m.Names)
			}
		default:
			bad("%s: unknown kind %q", where, m.Kind)
		}
		if !known(m.Material) {
			bad("%s: unknown material %q", where, m.Material)
		}
		if m.Thickness <= 0 || m.CellArea <= 0 {
			bad("%s: thickness and cell_area must be > 0", where)
		}
		if a := m.EdgeArea; a != nil {
			checkArea(bad, where, a)
		}

		cells := make(map[string]bool)
		for _, c := range m.cells() {
			cells[c] = true
			vertices[m.cellName(c)] = true
		}
		for j, l := range m.Links {
			at := fmt.Sprintf("%s.links[%d]", where, j)
			if _, ok := nodes[l.Node]; !ok {
				bad("%s: unknown node %q", at, l.Node)
			}
			if !cells[l.Cell] {
				bad("%s: unknown cell %q", at, l.Cell)
			}
			if l.Area <= 0 {
				bad("%s: area must be > 0", at)
			}
		}
	}
}

func checkArea(bad func(string, ...interface{}), where string, a *AreaSpec) {
	switch a.Kind {
	case "constant":
		if a.Value <= 0 {
			bad("%s.edge_area: value must be > 0", where)
		}
	case "uniform":
		if a.Min <= 0 || a.Max < a.Min {
			bad("%s.edge_area: need 0 < min <= max", where)
		}
	case "normal":
		if a.Mean <= 0 || a.Stddev < 0 || a.Floor <= 0 {
			bad("%s.edge_area: need mean > 0, stddev >= 0, floor > 0", where)
		}
	default:
		bad("%s.edge_area: unknown kind %q", where, a.Kind)
	}
}
