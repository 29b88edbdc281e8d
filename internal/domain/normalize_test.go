package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUnits(t *testing.T) {
	t.Run("terrestrial ng/kg converted by bulk density", func(t *testing.T) {
		m := Measurement{LocationType: FlagTerrestrial, Unit: UnitMassPerMass, Value: float64Ptr(5)}
		out := NormalizeUnits(m)
		require.NotNil(t, out.Value)
		assert.InDelta(t, 6.5, *out.Value, 1e-9)
		assert.Equal(t, UnitMassPerVolume, out.Unit)
	})

	t.Run("oceanic ng/kg value untouched", func(t *testing.T) {
		m := Measurement{LocationType: FlagOceanic, Unit: UnitMassPerMass, Value: float64Ptr(5)}
		out := NormalizeUnits(m)
		require.NotNil(t, out.Value)
		assert.Equal(t, 5.0, *out.Value)
	})

	t.Run("terrestrial ng/L value untouched", func(t *testing.T) {
		m := Measurement{LocationType: FlagTerrestrial, Unit: UnitMassPerVolume, Value: float64Ptr(5)}
		out := NormalizeUnits(m)
		require.NotNil(t, out.Value)
		assert.Equal(t, 5.0, *out.Value)
	})

	t.Run("unit relabeled even when never converted", func(t *testing.T) {
		// The unconditional relabel is inherited source behavior; see the
		// package docs.
		m := Measurement{LocationType: FlagOceanic, Unit: "ug/m3", Value: float64Ptr(5)}
		out := NormalizeUnits(m)
		assert.Equal(t, UnitMassPerVolume, out.Unit)
		assert.Equal(t, 5.0, *out.Value)
	})

	t.Run("nil value survives conversion path", func(t *testing.T) {
		m := Measurement{LocationType: FlagTerrestrial, Unit: UnitMassPerMass}
		out := NormalizeUnits(m)
		assert.Nil(t, out.Value)
		assert.Equal(t, UnitMassPerVolume, out.Unit)
	})
}
