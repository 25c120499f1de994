package verify

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/section"
)

func TestShearConcreteOnly(t *testing.T) {
	sec := historicalBeam(t)

	res, err := Shear(sec, 30, Santarella, true)
	require.NoError(t, err)

	// rho = 0.58%: amplification 1.016 on tau = 4 legacy units.
	assert.InDelta(t, 55.24, res.ConcreteShare, 0.05)
	assert.Zero(t, res.StirrupShare)
	assert.Zero(t, res.BentBarShare)
	assert.InDelta(t, res.ConcreteShare, res.Resistance, 1e-9)
	assert.True(t, res.Verified)
	assert.InDelta(t, 0.2164, res.TauMean, 5e-4)
}

func TestShearCombinationRules(t *testing.T) {
	sec := historicalBeam(t)
	sec.SetStirrup(8, 150, 2)
	sec.SetBentBars(16, 2, 45)

	santarella, err := Shear(sec, 60, Santarella, true)
	require.NoError(t, err)
	giangreco, err := Shear(sec, 60, Giangreco, true)
	require.NoError(t, err)

	assert.InDelta(t, 18.48, santarella.StirrupShare, 0.05)
	assert.InDelta(t, 16.97, santarella.BentBarShare, 0.05)
	assert.InDelta(t, 90.70, santarella.Resistance, 0.1)

	// Pairwise maximum: concrete + stirrups wins here.
	want := santarella.ConcreteShare + santarella.StirrupShare
	assert.InDelta(t, want, giangreco.Resistance, 1e-9)
	assert.Less(t, giangreco.Resistance, santarella.Resistance)
}

func TestShearExcludingConcrete(t *testing.T) {
	sec := historicalBeam(t)
	sec.SetStirrup(8, 150, 2)

	res, err := Shear(sec, 10, Santarella, false)
	require.NoError(t, err)
	assert.Zero(t, res.ConcreteShare)
	assert.InDelta(t, res.StirrupShare, res.Resistance, 1e-9)
}

func TestShearUnknownMethod(t *testing.T) {
	sec := historicalBeam(t)
	_, err := Shear(sec, 30, Method("moersch"), true)
	var cfg *section.ConfigError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfg))
}

func TestStirrupSpacing(t *testing.T) {
	sec := historicalBeam(t)

	// Below the concrete resistance no stirrups are needed.
	assert.True(t, math.IsInf(StirrupSpacing(sec, 40, 8, 2, 0.9), 1))

	s := StirrupSpacing(sec, 100, 8, 2, 0.9)
	assert.InDelta(t, 55.75, s, 0.5)

	// A tiny leftover hits the d/2 cap.
	capped := StirrupSpacing(sec, 56, 8, 2, 0.9)
	assert.InDelta(t, 231.0, capped, 1e-9)
}
