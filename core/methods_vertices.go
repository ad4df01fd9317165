// File: methods_vertices.go
// Role: Vertex construction, state access, derived quantities, and the
//       Graph's vertex catalog (AddVertex/HasVertex/Vertices/...).
//
// Determinism:
//   - Vertices() returns vertices in insertion order (VertexID ascending).
//     Simulation results never depend on it.
//
// Concurrency:
//   - Vertex catalog protected by Graph.mu.
//   - Vertex temperature state is unguarded; one run owns one graph.

package core

import "fmt"

// NewFree returns a Free vertex at 0 K.
func NewFree(name string, m Material, thickness, area float64) *Vertex {
	return &Vertex{name: name, kind: Free, material: m, thickness: thickness, area: area}
}

// NewSource returns a Source vertex at 0 K whose heat generation is heat().
// Panics on a nil heat function (programmer error).
func NewSource(name string, m Material, thickness, area float64, heat HeatFunc) *Vertex {
	if heat == nil {
		panic("core: NewSource(nil HeatFunc)")
	}

	return &Vertex{name: name, kind: Source, material: m, thickness: thickness, area: area, heatFn: heat}
}

// NewFixed returns a boundary vertex whose temperature is always temp().
// Panics on a nil temperature function (programmer error).
func NewFixed(name string, m Material, thickness, area float64, temp TemperatureFunc) *Vertex {
	if temp == nil {
		panic("core: NewFixed(nil TemperatureFunc)")
	}

	return &Vertex{name: name, kind: Fixed, material: m, thickness: thickness, area: area, temperatureFn: temp}
}

// Constant returns a TemperatureFunc that always reports t.
func Constant(t float64) TemperatureFunc {
	return func() float64 { return t }
}

// ConstantHeat returns a HeatFunc that always generates w watts.
func ConstantHeat(w float64) HeatFunc {
	return func() float64 { return w }
}

// Name returns the vertex label given at construction.
func (v *Vertex) Name() string { return v.name }

// Kind returns the vertex variant.
func (v *Vertex) Kind() Kind { return v.kind }

// Material returns the vertex material.
func (v *Vertex) Material() Material { return v.material }

// Thickness returns the node thickness, m.
func (v *Vertex) Thickness() float64 { return v.thickness }

// Area returns the node area, m².
func (v *Vertex) Area() float64 { return v.area }

// Temperature returns the current temperature, K.
// For a Fixed vertex it invokes the temperature source.
func (v *Vertex) Temperature() float64 {
	if v.kind == Fixed {
		return v.temperatureFn()
	}

	return v.temperature
}

// NextTemperature returns the scratch temperature of the step in progress, K.
// It is not authoritative outside a step. For a Fixed vertex it invokes the
// temperature source.
func (v *Vertex) NextTemperature() float64 {
	if v.kind == Fixed {
		return v.temperatureFn()
	}

	return v.nextTemperature
}

// SetTemperature overwrites the current temperature.
// Returns ErrFixedVertex for Fixed vertices; the boundary value is untouched.
func (v *Vertex) SetTemperature(t float64) error {
	if v.kind == Fixed {
		return fmt.Errorf("SetTemperature(%q): %w", v.name, ErrFixedVertex)
	}
	v.temperature = t

	return nil
}

// SetNextTemperature overwrites the scratch temperature.
// Returns ErrFixedVertex for Fixed vertices.
func (v *Vertex) SetNextTemperature(t float64) error {
	if v.kind == Fixed {
		return fmt.Errorf("SetNextTemperature(%q): %w", v.name, ErrFixedVertex)
	}
	v.nextTemperature = t

	return nil
}

// MustSetTemperature is SetTemperature for assembly code that knows v is not
// Fixed. It panics on a Fixed vertex.
func (v *Vertex) MustSetTemperature(t float64) *Vertex {
	if err := v.SetTemperature(t); err != nil {
		panic(err)
	}

	return v
}

// HeatGeneration returns the Source functor's current output, W.
// Free and Fixed vertices generate nothing.
func (v *Vertex) HeatGeneration() float64 {
	if v.kind != Source {
		return 0
	}

	return v.heatFn()
}

// Volume returns area·thickness, m³.
func (v *Vertex) Volume() float64 {
	return v.area * v.thickness
}

// HalfThickness returns thickness/2, m.
func (v *Vertex) HalfThickness() float64 {
	return v.thickness / 2
}

// VolumetricHeatCapacity returns the material's ρ·cp, J/(m³·K).
func (v *Vertex) VolumetricHeatCapacity() float64 {
	return v.material.VolumetricHeatCapacity()
}

// NodeHeatCapacity returns the heat capacity of the whole node, J/K.
func (v *Vertex) NodeHeatCapacity() float64 {
	return v.VolumetricHeatCapacity() * v.Volume()
}

// Conductance returns k·area/thickness, W/K.
func (v *Vertex) Conductance() float64 {
	return v.material.K * v.area / v.thickness
}

// String renders the vertex for logs.
func (v *Vertex) String() string {
	return fmt.Sprintf("%s %q material=%s thickness=%.3f temperature=%.6f",
		v.kind, v.name, v.material, v.thickness, v.Temperature())
}

// AddVertex inserts v if missing and reports whether it was newly added.
//
// Behavior highlights:
//   - Set semantics: adding a member again is a no-op (false, nil).
//   - The new vertex receives VertexID == VertexCount() before the call.
//
// Errors:
//   - ErrNilVertex: v == nil.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v *Vertex) (bool, error) {
	if v == nil {
		return false, ErrNilVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[v]; ok {
		return false, nil
	}
	g.index[v] = VertexID(len(g.vertices))
	g.vertices = append(g.vertices, v)
	g.incidence = append(g.incidence, nil)

	return true, nil
}

// HasVertex reports whether v is a member (nil ⇒ false).
func (g *Graph) HasVertex(v *Vertex) bool {
	if v == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[v]

	return ok
}

// VertexID returns the arena index of v.
func (g *Graph) VertexID(v *Vertex) (VertexID, error) {
	if v == nil {
		return 0, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("VertexID(%q): %w", v.name, ErrVertexNotFound)
	}

	return id, nil
}

// VertexAt returns the vertex with the given id.
func (g *Graph) VertexAt(id VertexID) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || int(id) >= len(g.vertices) {
		return nil, fmt.Errorf("VertexAt(%d): %w", id, ErrVertexNotFound)
	}

	return g.vertices[id], nil
}

// Lookup returns the first vertex (lowest id) with the given name.
func (g *Graph) Lookup(name string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, v := range g.vertices {
		if v.name == name {
			return v, true
		}
	}

	return nil, false
}

// Vertices returns a snapshot of the vertex set in VertexID order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
