// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// house.go - complete single-zone building models.
//
// Every model is one well-mixed interior air node (a Source whose heat is the
// HVAC output plus window solar gain) coupled to a Fixed outdoor-air node
// through walls, optionally a roof, an infiltration path and a slab floor on
// soil. The returned House carries handles that controllers and recorders use.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvheat/core"
)

// RoofKind selects the ceiling/roof assembly of a house.
type RoofKind int

const (
	// NoRoof models walls only.
	NoRoof RoofKind = iota
	// PlainRoof couples the ceiling to outdoor air through a still-air film.
	PlainRoof
	// SkyRoof adds a radiation path from the shingles to a Fixed sky node
	// colder than the outdoor air.
	SkyRoof
	// SolarRoof is SkyRoof with sun-heated shingles (a Source) and an
	// exterior convection film.
	SolarRoof
)

// String returns the lower-case roof name.
func (r RoofKind) String() string {
	switch r {
	case NoRoof:
		return "none"
	case PlainRoof:
		return "plain"
	case SkyRoof:
		return "sky"
	case SolarRoof:
		return "solar"
	default:
		return fmt.Sprintf("RoofKind(%d)", int(r))
	}
}

// ParseRoofKind maps "none", "plain", "sky" or "solar" to a RoofKind.
func ParseRoofKind(s string) (RoofKind, error) {
	for r := NoRoof; r <= SolarRoof; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return NoRoof, fmt.Errorf("%s: unknown roof %q: %w", MethodHouse, s, ErrConstructFailed)
}

// HouseSpec parameterizes NewHouse. Zero values select the defaults noted on
// each field.
type HouseSpec struct {
	FloorArea  float64 // m²; 0 → DefaultFloorArea
	WallHeight float64 // m; 0 → DefaultWallHeight

	// Outside is the outdoor air temperature; nil → Constant(DefaultOutsideAir).
	Outside core.TemperatureFunc
	// SkyDepression is how much colder the radiative sky is than outdoor
	// air, K; 0 → DefaultSkyDepression. Used by SkyRoof and SolarRoof.
	SkyDepression float64
	// Insolation is the solar irradiance, W/m²; nil → constant DefaultInsolation.
	Insolation func() float64
	// Absorptivity of the roof surface; 0 → DefaultAbsorptivity.
	Absorptivity float64
	// WindowArea admits WindowArea·Insolation W into the room; 0 means no windows.
	WindowArea float64

	Roof RoofKind
	// Wall overrides the wall layers between the two air films; nil → StudWall().
	Wall []Layer
	// Ceiling overrides the ceiling layers below the shingles; nil → the
	// roof's default (FramedCeiling, or InsulatedCeiling for SolarRoof).
	Ceiling []Layer

	// ACH > 0 adds an infiltration path of that many air changes per hour.
	ACH float64

	// Floor adds a carpeted slab on soil over a Fixed deep-soil node.
	Floor bool
	// SoilTemperature of deep soil, K; 0 → DefaultSoilTemp.
	SoilTemperature float64

	// HVAC is the conditioning output into the room, W (negative cools);
	// nil → no conditioning.
	HVAC core.HeatFunc
}

// House is a built model with the handles a control loop needs.
type House struct {
	Graph *core.Graph
	// Interior is the room air node (thermostat sensor, HVAC target).
	Interior *core.Vertex
	// Outside is the Fixed outdoor-air node.
	Outside *core.Vertex
	// Sky is the Fixed radiative sky node, nil unless the roof has one.
	Sky *core.Vertex
	// Ground is the Fixed deep-soil node, nil without a floor.
	Ground *core.Vertex
	// Roof is the outermost roof node (shingles), nil for NoRoof.
	Roof *core.Vertex

	Spec     HouseSpec
	WallArea float64 // m²
	Volume   float64 // m³
}

// withDefaults resolves zero fields.
func (s HouseSpec) withDefaults() HouseSpec {
	if s.FloorArea == 0 {
		s.FloorArea = DefaultFloorArea
	}
	if s.WallHeight == 0 {
		s.WallHeight = DefaultWallHeight
	}
	if s.Outside == nil {
		s.Outside = core.Constant(DefaultOutsideAir)
	}
	if s.SkyDepression == 0 {
		s.SkyDepression = DefaultSkyDepression
	}
	if s.Insolation == nil {
		s.Insolation = func() float64 { return DefaultInsolation }
	}
	if s.Absorptivity == 0 {
		s.Absorptivity = DefaultAbsorptivity
	}
	if s.SoilTemperature == 0 {
		s.SoilTemperature = DefaultSoilTemp
	}
	if s.HVAC == nil {
		s.HVAC = core.ConstantHeat(0)
	}
	if s.Wall == nil {
		s.Wall = StudWall()
	}
	if s.Ceiling == nil {
		if s.Roof == SolarRoof {
			s.Ceiling = InsulatedCeiling()
		} else {
			s.Ceiling = FramedCeiling()
		}
	}

	return s
}

// StudWall is a framed wall: fir sheathing, 80 % foam between 20 % studs,
// fir paneling.
func StudWall() []Layer {
	return []Layer{
		{Name: "sheathing", Material: core.DouglasFir, Thickness: 0.01},
		Parallel("wall cavity",
			Layer{Name: "wall insulation", Material: core.Styrofoam, Thickness: 0.09, Fraction: 0.8},
			Layer{Name: "wall stud", Material: core.DouglasFir, Thickness: 0.09, Fraction: 0.2},
		),
		{Name: "wall paneling", Material: core.DouglasFir, Thickness: 0.01},
	}
}

// SheetrockWall is StudWall with thicker sheathing and sheetrock inside.
func SheetrockWall() []Layer {
	w := StudWall()
	w[0].Thickness = 0.015
	w[2] = Layer{Name: "wall sheetrock", Material: core.Sheetrock, Thickness: 0.015}
	return w
}

// FramedCeiling is 80 % foam between 20 % rafters under fir paneling.
func FramedCeiling() []Layer {
	return []Layer{
		Parallel("ceiling cavity",
			Layer{Name: "ceiling insulation", Material: core.Styrofoam, Thickness: 0.09, Fraction: 0.8},
			Layer{Name: "rafters", Material: core.DouglasFir, Thickness: 0.09, Fraction: 0.2},
		),
		{Name: "ceiling paneling", Material: core.DouglasFir, Thickness: 0.01},
	}
}

// InsulatedCeiling is 35 cm of foam between 10 % joists under sheetrock.
func InsulatedCeiling() []Layer {
	return []Layer{
		Parallel("ceiling cavity",
			Layer{Name: "ceiling insulation", Material: core.Styrofoam, Thickness: 0.35, Fraction: 0.9},
			Layer{Name: "joist", Material: core.DouglasFir, Thickness: 0.35, Fraction: 0.1},
		),
		{Name: "ceiling sheetrock", Material: core.Sheetrock, Thickness: 0.015},
	}
}

// SlabFloor is carpet over a concrete slab over three thin soil layers.
func SlabFloor(soil float64) []Layer {
	return []Layer{
		{Name: "carpet", Material: core.Carpet, Thickness: 0.03},
		{Name: "slab", Material: core.Concrete, Thickness: 0.10, Temperature: DefaultSlabTemp},
		{Name: "soil", Material: core.Soil, Thickness: 0.03, Split: 3, Temperature: soil},
	}
}

// film returns a still-air boundary layer node spec.
func film(name string) Layer {
	return Layer{Name: name, Material: core.AirBoundaryLayer, Thickness: core.AirBoundaryLayerThickness}
}

// NewHouse builds the house described by spec. Created nodes start at the
// outdoor temperature unless opts set WithInitialTemperature.
func NewHouse(spec HouseSpec, opts ...BuilderOption) (*House, error) {
	s := spec.withDefaults()
	h := &House{
		Graph:    core.NewGraph(),
		Spec:     s,
		WallArea: math.Sqrt(s.FloorArea) * 4 * s.WallHeight,
		Volume:   s.FloorArea * s.WallHeight,
	}
	cfg := newBuilderConfig(append([]BuilderOption{WithInitialTemperature(s.Outside())}, opts...)...)

	h.Outside = core.NewFixed(cfg.name("outside air"), core.AirBulkMixed, outsideAirThickness, h.WallArea, s.Outside)
	hvac, insolation, window := s.HVAC, s.Insolation, s.WindowArea
	h.Interior = newNode(cfg, nodeSpec{
		name:      "interior volume",
		material:  core.AirBulkMixed,
		thickness: h.Volume / h.WallArea,
		area:      h.WallArea,
		heat: func() float64 {
			return hvac() + window*insolation()
		},
	})

	cons := []Constructor{
		addVertices(h.Outside, h.Interior),
		Layers(h.Outside, h.Interior, h.WallArea,
			append(append([]Layer{film("wall outside boundary")}, s.Wall...), film("wall inside boundary"))...),
	}
	roof, err := h.roof(cfg)
	if err != nil {
		return nil, err
	}
	cons = append(cons, roof...)
	if s.ACH > 0 {
		cons = append(cons, Infiltration(h.Outside, h.Interior, s.ACH, h.Volume, h.WallArea))
	}
	if s.Floor {
		h.Ground = core.NewFixed(cfg.name("deep soil"), core.Soil, outsideAirThickness, s.FloorArea, core.Constant(s.SoilTemperature))
		cons = append(cons, Layers(h.Interior, h.Ground, s.FloorArea,
			append([]Layer{film("floor boundary")}, SlabFloor(s.SoilTemperature)...)...))
	}

	if err := apply(h.Graph, cfg, cons); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodHouse, err)
	}

	return h, nil
}

// roof returns the constructors of the selected roof and sets h.Sky/h.Roof.
func (h *House) roof(cfg builderConfig) ([]Constructor, error) {
	s := h.Spec
	area := s.FloorArea
	ceiling := append(append([]Layer(nil), s.Ceiling...), film("ceiling boundary"))

	switch s.Roof {
	case NoRoof:
		return nil, nil
	case PlainRoof:
		h.Roof = newNode(cfg, nodeSpec{name: "shingles", material: core.DouglasFir, thickness: 0.01, area: area})
		return []Constructor{
			Layers(h.Outside, h.Roof, area, film("roof outside boundary")),
			Layers(h.Roof, h.Interior, area, ceiling...),
		}, nil
	case SkyRoof, SolarRoof:
		outside, depression := s.Outside, s.SkyDepression
		h.Sky = core.NewFixed(cfg.name("sky"), core.AirBulkMixed, outsideAirThickness, h.WallArea,
			func() float64 { return outside() - depression })

		exterior := film("roof convection")
		shingles := nodeSpec{name: "shingles", material: core.DouglasFir, thickness: 0.01, area: area}
		if s.Roof == SolarRoof {
			exterior = Layer{Name: "convection", Material: core.Convection, Thickness: core.AirBoundaryLayerThickness}
			insolation, absorptivity := s.Insolation, s.Absorptivity
			shingles.thickness = 0.02
			shingles.heat = func() float64 { return insolation() * absorptivity * area }
		}
		h.Roof = newNode(cfg, shingles)
		radiation := Layer{Name: "radiation", Material: core.Radiation, Thickness: core.AirBoundaryLayerThickness}

		return []Constructor{
			Layers(h.Outside, h.Roof, area, exterior),
			Layers(h.Sky, h.Roof, area, radiation),
			Layers(h.Roof, h.Interior, area, ceiling...),
		}, nil
	default:
		return nil, fmt.Errorf("%s: roof %v: %w", MethodHouse, s.Roof, ErrConstructFailed)
	}
}

// addVertices registers existing vertices in order.
func addVertices(vs ...*core.Vertex) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, v := range vs {
			if err := addNode(g, MethodHouse, v); err != nil {
				return err
			}
		}
		return nil
	}
}

// FirstHouse is the earliest model: a 500 m² envelope of fir, foam and fir
// between a 0 K boundary and room air heated with 10 kW. Everything starts
// at 0 K.
func FirstHouse(opts ...BuilderOption) (*House, error) {
	const area = 500.0
	cfg := newBuilderConfig(append([]BuilderOption{WithInitialTemperature(0)}, opts...)...)
	h := &House{Graph: core.NewGraph(), WallArea: area, Volume: area}
	h.Outside = core.NewFixed(cfg.name("v0"), core.DouglasFir, 0.01, area, core.Constant(0))
	h.Interior = core.NewSource(cfg.name("interior volume"), core.AirBulkMixed, 1, area, core.ConstantHeat(10000)).
		MustSetTemperature(cfg.temperature)
	h.Spec = HouseSpec{FloorArea: area, Outside: core.Constant(0), HVAC: core.ConstantHeat(10000)}

	err := apply(h.Graph, cfg, []Constructor{
		addVertices(h.Outside, h.Interior),
		Layers(h.Outside, h.Interior, area,
			Layer{Name: "outer fir", Material: core.DouglasFir, Thickness: 0.02, Split: 2},
			Layer{Name: "foam", Material: core.Styrofoam, Thickness: 0.05, Split: 5},
			Layer{Name: "inner fir", Material: core.DouglasFir, Thickness: 0.02, Split: 2},
			film("inside boundary"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("FirstHouse: %w", err)
	}

	return h, nil
}

// WallOnly conducts through the stud walls only; a 1.5 kW cooler runs
// constantly against outdoor air at oat K.
func WallOnly(oat float64, opts ...BuilderOption) (*House, error) {
	return NewHouse(HouseSpec{Outside: core.Constant(oat), HVAC: core.ConstantHeat(-1500)}, opts...)
}

// WallAndCeiling adds a framed ceiling under a plain roof to WallOnly.
func WallAndCeiling(oat float64, opts ...BuilderOption) (*House, error) {
	return NewHouse(HouseSpec{Outside: core.Constant(oat), Roof: PlainRoof, HVAC: core.ConstantHeat(-1500)}, opts...)
}

// WallCeilingAndInfiltration adds sky radiation and 0.5 ACH infiltration;
// the cooler runs at 3 kW.
func WallCeilingAndInfiltration(oat float64, opts ...BuilderOption) (*House, error) {
	return NewHouse(HouseSpec{
		Outside: core.Constant(oat),
		Roof:    SkyRoof,
		ACH:     DefaultACH,
		HVAC:    core.ConstantHeat(-3000),
	}, opts...)
}

// SolarSpec returns the full summer model: sun on the roof and windows,
// sheetrock walls, an insulated ceiling and a slab floor on soil, with hvac
// as the conditioning output.
func SolarSpec(outside core.TemperatureFunc, hvac core.HeatFunc) HouseSpec {
	return HouseSpec{
		Outside:    outside,
		Roof:       SolarRoof,
		Wall:       SheetrockWall(),
		WindowArea: DefaultWindowArea,
		Floor:      true,
		HVAC:       hvac,
	}
}

// SolarHouse is NewHouse(SolarSpec(Constant(oat), hvac)).
func SolarHouse(oat float64, hvac core.HeatFunc, opts ...BuilderOption) (*House, error) {
	return NewHouse(SolarSpec(core.Constant(oat), hvac), opts...)
}
