// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// constants.go - method tags, minima and the reference house geometry.

package builder

// Method tags used as error context.
const (
	MethodPath         = "Path"
	MethodGrid         = "Grid"
	MethodLayers       = "Layers"
	MethodInfiltration = "Infiltration"
	MethodHouse        = "House"
)

// Minima for size parameters.
const (
	MinPathNodes = 1
	MinGridDim   = 1
	MinSplit     = 1
)

// Builder defaults.
const (
	// DefaultArea is the node area used when WithArea is not given, m².
	DefaultArea = 1.0
	// DefaultInitialTemperature is the starting temperature of built nodes, K.
	DefaultInitialTemperature = 293.15
)

// Reference house: a 250 m² single-storey box, 2.5 m walls, summer design day.
const (
	DefaultFloorArea     = 250.0  // m²
	DefaultWallHeight    = 2.5    // m
	DefaultOutsideAir    = 305.0  // K
	DefaultSkyDepression = 10.0   // K below outside air
	DefaultInsolation    = 1000.0 // W/m², direct normal at peak
	DefaultAbsorptivity  = 0.8    // roof surface
	DefaultWindowArea    = 5.0    // m², solar gain straight into the room
	DefaultSoilTemp      = 286.0  // K, deep soil
	DefaultACH           = 0.5    // air changes per hour
	DefaultSlabTemp      = 295.0  // K, initial slab temperature

	// Node thickness of the Fixed outdoor air and sky vertices; with
	// AirBulkMixed it contributes almost no resistance.
	outsideAirThickness = 10.0
	// Thickness of the infiltration pseudo-node. Any value works; the
	// material's k is scaled so the node conducts the requested W/K.
	infiltrationThickness = 0.1
)
