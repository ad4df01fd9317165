// File: material.go
// Role: Material value type and the standard material catalog.
//
// Policy:
//   - Material is a pure value: no validation, no behavior beyond derived quantities.
//   - Catalog values are process-wide constants; never mutate them.

package core

import (
	"sort"
	"strings"
)

// Material holds the physical properties of a conducting medium.
type Material struct {
	// Name is a human-readable label.
	Name string
	// K is the thermal conductivity, W/(m·K).
	K float64
	// Rho is the density, kg/m³.
	Rho float64
	// Cp is the specific heat capacity, J/(kg·K).
	Cp float64
}

// NewMaterial returns a Material. Values are not validated; non-positive
// inputs lead to infinities or NaN downstream.
func NewMaterial(name string, k, rho, cp float64) Material {
	return Material{Name: name, K: k, Rho: rho, Cp: cp}
}

// Alpha returns the thermal diffusivity k/(ρ·cp), m²/s.
func (m Material) Alpha() float64 {
	return m.K / (m.Rho * m.Cp)
}

// VolumetricHeatCapacity returns ρ·cp, J/(m³·K).
func (m Material) VolumetricHeatCapacity() float64 {
	return m.Rho * m.Cp
}

// String returns the material name.
func (m Material) String() string {
	return m.Name
}

// AirBoundaryLayerThickness is the nominal still-air film thickness, m.
// With AirBoundaryLayer's k this gives a film coefficient of 5 W/(m²·K).
const AirBoundaryLayerThickness = 0.01

// Standard materials (engineering-toolbox values, SI units).
var (
	Iron       = NewMaterial("Iron", 80, 7870, 450)
	Styrofoam  = NewMaterial("Styrofoam", 0.033, 75, 1300)
	DouglasFir = NewMaterial("Douglas Fir", 0.15, 580, 1700)
	Carpet     = NewMaterial("Carpet", 0.06, 200, 1300)
	Sheetrock  = NewMaterial("Sheetrock", 0.17, 800, 1090)
	Concrete   = NewMaterial("Concrete", 1.7, 2300, 880)
	Soil       = NewMaterial("Soil", 1.5, 1500, 800)

	// AirBoundaryLayer models a still-air film; its k is per metre, the
	// effective film coefficient comes from AirBoundaryLayerThickness.
	AirBoundaryLayer = NewMaterial("Air Boundary Layer", 0.05, 1.225, 1006)

	// AirBulkMixed is well-mixed room air: very high k, air heat capacity.
	AirBulkMixed = NewMaterial("Air Bulk Mixed", 10000, 1.225, 1006)

	// Convection is an exterior film of 12.4 W/(m²·K) at AirBoundaryLayerThickness.
	Convection = NewMaterial("Convection", 0.124, 1.225, 1006)

	// Radiation linearizes sky radiation at 6.1 W/(m²·K) at AirBoundaryLayerThickness.
	Radiation = NewMaterial("Radiation", 0.061, 1.225, 1006)

	// ForTesting has k=1, ρ=100, cp=1000 (volumetric heat capacity 100000 J/(m³·K)).
	ForTesting = NewMaterial("For Testing", 1, 100, 1000)
)

// Catalog returns the standard materials sorted by name.
func Catalog() []Material {
	out := []Material{
		Iron, Styrofoam, DouglasFir, Carpet, Sheetrock, Concrete, Soil,
		AirBoundaryLayer, AirBulkMixed, Convection, Radiation, ForTesting,
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// LookupMaterial finds a catalog material by name, ignoring case and
// treating '-', '_' and spaces alike ("douglas_fir" matches "Douglas Fir").
func LookupMaterial(name string) (Material, bool) {
	want := normalizeMaterialName(name)
	for _, m := range Catalog() {
		if normalizeMaterialName(m.Name) == want {
			return m, true
		}
	}

	return Material{}, false
}

func normalizeMaterialName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}
