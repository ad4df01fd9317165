// SPDX-License-Identifier: MIT
// Package core_test verifies Material and Vertex contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheat/core"
)

func TestMaterial_Derived(t *testing.T) {
	m := core.NewMaterial("probe", 2, 100, 1000)
	assert.Equal(t, 100000.0, m.VolumetricHeatCapacity())
	assert.InDelta(t, 2e-5, m.Alpha(), 1e-18)
	assert.Equal(t, "probe", m.String())

	assert.Equal(t, 100000.0, core.ForTesting.VolumetricHeatCapacity())
	// No validation: zero density yields +Inf diffusivity.
	assert.True(t, core.NewMaterial("void", 1, 0, 1000).Alpha() > 1e300)
}

func TestMaterial_Catalog(t *testing.T) {
	cat := core.Catalog()
	require.NotEmpty(t, cat)
	for i := 1; i < len(cat); i++ {
		assert.Less(t, cat[i-1].Name, cat[i].Name, "catalog must be sorted by name")
	}

	m, ok := core.LookupMaterial("douglas_fir")
	require.True(t, ok)
	assert.Equal(t, core.DouglasFir, m)

	m, ok = core.LookupMaterial("  AIR-BULK-MIXED ")
	require.True(t, ok)
	assert.Equal(t, core.AirBulkMixed, m)

	_, ok = core.LookupMaterial("unobtainium")
	assert.False(t, ok)
}

// TestVertex_HeatCapacityIdentity checks nodeHeatCapacity = ρcp·area·thickness
// for every vertex variant.
func TestVertex_HeatCapacityIdentity(t *testing.T) {
	cases := []struct {
		name      string
		m         core.Material
		thickness float64
		area      float64
	}{
		{"unit", core.ForTesting, 1, 1},
		{"ten", core.ForTesting, 1, 10},
		{"fir sheathing", core.DouglasFir, 0.01, 158.1},
		{"styrofoam third", core.Styrofoam, 1.0 / 3, 10},
		{"bulk air", core.AirBulkMixed, 3.95, 158.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.m.VolumetricHeatCapacity() * tc.area * tc.thickness
			vs := []*core.Vertex{
				core.NewFree(tc.name, tc.m, tc.thickness, tc.area),
				core.NewSource(tc.name, tc.m, tc.thickness, tc.area, core.ConstantHeat(1)),
				core.NewFixed(tc.name, tc.m, tc.thickness, tc.area, core.Constant(300)),
			}
			for _, v := range vs {
				assert.Equal(t, want, v.NodeHeatCapacity(), v.Kind().String())
				assert.Equal(t, tc.area*tc.thickness, v.Volume())
				assert.Equal(t, tc.thickness/2, v.HalfThickness())
				assert.Equal(t, tc.m.K*tc.area/tc.thickness, v.Conductance())
			}
		})
	}
}

func TestVertex_FreeAndSourceState(t *testing.T) {
	free := core.NewFree("free", core.ForTesting, 1, 1)
	assert.Equal(t, core.Free, free.Kind())
	assert.Equal(t, 0.0, free.Temperature())
	require.NoError(t, free.SetTemperature(293.15))
	require.NoError(t, free.SetNextTemperature(294))
	assert.Equal(t, 293.15, free.Temperature())
	assert.Equal(t, 294.0, free.NextTemperature())
	assert.Equal(t, 0.0, free.HeatGeneration())

	on := true
	src := core.NewSource("hvac", core.ForTesting, 1, 1, func() float64 {
		if on {
			return -3000
		}
		return 0
	})
	assert.Equal(t, core.Source, src.Kind())
	assert.Equal(t, -3000.0, src.HeatGeneration())
	on = false
	assert.Equal(t, 0.0, src.HeatGeneration())
	require.NoError(t, src.SetTemperature(300))
	assert.Equal(t, 300.0, src.Temperature())
}

// TestVertex_FixedIsReadOnly checks that a boundary reports its source and
// rejects every mutation.
func TestVertex_FixedIsReadOnly(t *testing.T) {
	outside := 305.0
	v := core.NewFixed("outside", core.AirBulkMixed, 10, 1, func() float64 { return outside })

	assert.Equal(t, core.Fixed, v.Kind())
	assert.Equal(t, 305.0, v.Temperature())
	assert.Equal(t, 305.0, v.NextTemperature())

	assert.ErrorIs(t, v.SetTemperature(1), core.ErrFixedVertex)
	assert.ErrorIs(t, v.SetNextTemperature(1), core.ErrFixedVertex)
	assert.Equal(t, 305.0, v.Temperature(), "failed mutation must not change the boundary")

	outside = 280
	assert.Equal(t, 280.0, v.Temperature())
	assert.Equal(t, 280.0, v.NextTemperature())
	assert.Equal(t, 0.0, v.HeatGeneration())

	assert.Panics(t, func() { v.MustSetTemperature(1) })
}

func TestVertex_NilFunctorsPanic(t *testing.T) {
	assert.Panics(t, func() { core.NewFixed("x", core.Iron, 1, 1, nil) })
	assert.Panics(t, func() { core.NewSource("x", core.Iron, 1, 1, nil) })
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "free", core.Free.String())
	assert.Equal(t, "fixed", core.Fixed.String())
	assert.Equal(t, "source", core.Source.String())
	assert.Equal(t, "unknown", core.Kind(42).String())
}
