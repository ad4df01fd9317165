// SPDX-License-Identifier: MIT
// Package: lvheat/builder
//
// impl_infiltration.go - outdoor air leaking into the conditioned volume.
//
// Air exchange moves ach·volume/3600 m³/s of air, carrying
// ρcp·(that flow) W/K between outside and inside. It is modeled as one
// pseudo-node of thickness t whose conductivity is scaled so that the node
// conducts exactly that many W/K across its area:
//
//	k = t · (W/K) / area
//
// The node is joined to both endpoints by edges of the same area.

package builder

import (
	"log/slog"

	"github.com/katalvlaran/lvheat/core"
)

// InfiltrationConductance returns the air-exchange conductance, W/K.
func InfiltrationConductance(ach, volume float64) float64 {
	return ach / 3600 * volume * core.AirBulkMixed.VolumetricHeatCapacity()
}

// InfiltrationMaterial returns the pseudo-material of an infiltration node
// of the given thickness and area: air heat capacity, scaled conductivity.
func InfiltrationMaterial(ach, volume, area, thickness float64) core.Material {
	k := thickness * InfiltrationConductance(ach, volume) / area
	return core.NewMaterial("Infiltration", k, core.AirBulkMixed.Rho, core.AirBulkMixed.Cp)
}

// Infiltration returns a Constructor adding an air-exchange path between
// from and to: ach air changes per hour of volume m³, spread over area m².
// from and to are added to g if missing.
func Infiltration(from, to *core.Vertex, ach, volume, area float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateEndpoints(MethodInfiltration, from, to); err != nil {
			return err
		}
		for _, v := range []*core.Vertex{from, to} {
			if err := addNode(g, MethodInfiltration, v); err != nil {
				return err
			}
		}

		node := newNode(cfg, nodeSpec{
			name:      "infiltration",
			material:  InfiltrationMaterial(ach, volume, area, infiltrationThickness),
			thickness: infiltrationThickness,
			area:      area,
		})
		if err := addNode(g, MethodInfiltration, node); err != nil {
			return err
		}
		if err := connect(g, MethodInfiltration, from, node, area); err != nil {
			return err
		}
		if err := connect(g, MethodInfiltration, node, to, area); err != nil {
			return err
		}

		cfg.logger.Debug("builder: infiltration",
			slog.Float64("ach", ach),
			slog.Float64("volume_m3", volume),
			slog.Float64("w_per_k", InfiltrationConductance(ach, volume)))

		return nil
	}
}
