package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/material"
	"github.com/alexiusacademia/gorcv/internal/rd2229"
	"github.com/alexiusacademia/gorcv/internal/section"
)

// historicalBeam is the 300x500 reference beam: cover 30 mm, 4⌀16
// bottom bars (d = 462 mm), resistance-280 concrete with normal cement
// at water/cement 0.50, soft steel yielding at 1400 in legacy units.
func historicalBeam(t *testing.T) *section.Section {
	t.Helper()
	concrete, err := material.NewHistoricalConcrete(280, rd2229.CementNormal, 0.50)
	require.NoError(t, err)
	steel, err := material.NewHistoricalSteel(1400, material.Soft)
	require.NoError(t, err)
	sh, err := section.NewShape("rettangolare", 300, 500)
	require.NoError(t, err)
	sec, err := section.New(sh, concrete, steel, 30)
	require.NoError(t, err)
	sec.AddBottomBar(16, 4)
	return sec
}

func modernBeam(t *testing.T) *section.Section {
	t.Helper()
	concrete, err := material.NewConcrete(15)
	require.NoError(t, err)
	steel, err := material.NewSteelFromType("FeB32k")
	require.NoError(t, err)
	sh, err := section.NewShape("rettangolare", 300, 500)
	require.NoError(t, err)
	sec, err := section.New(sh, concrete, steel, 30)
	require.NoError(t, err)
	sec.AddBottomBar(16, 4)
	return sec
}

func TestFlexureHistoricalBeam(t *testing.T) {
	sec := historicalBeam(t)

	res, err := Flexure(sec, 80)
	require.NoError(t, err)

	// Steel side governs: the legacy allowable stress is low.
	assert.InDelta(t, 108.67, res.NeutralAxis.X, 0.05)
	assert.InDelta(t, 20.44, res.MomentResistance, 0.05)
	assert.False(t, res.Verified)
	assert.InDelta(t, 11.53, res.StressConcrete, 0.1)
	assert.InDelta(t, 233.6, res.StressSteel, 1.5)
	assert.Greater(t, res.UtilizationSteel, 1.0)
	assert.InDelta(t, res.MomentResistance/80, res.SafetyFactor, 1e-9)
}

func TestFlexureModernBeam(t *testing.T) {
	sec := modernBeam(t)

	res, err := Flexure(sec, 40)
	require.NoError(t, err)

	assert.InDelta(t, 129.06, res.NeutralAxis.X, 0.05)
	assert.InDelta(t, 46.88, res.MomentResistance, 0.1)
	assert.True(t, res.Verified)
	assert.Less(t, res.UtilizationConcrete, 1.0)
	assert.Less(t, res.UtilizationSteel, 1.0)
	assert.InDelta(t, 1.172, res.SafetyFactor, 0.005)
}

func TestRequiredSteelArea(t *testing.T) {
	sec := historicalBeam(t)

	// z = 8d/9 with the lever-arm assumption x = d/3.
	as := RequiredSteelArea(sec, 80, 0, FiberBottom)
	assert.InDelta(t, 3263, as, 3)

	// A positive moment compresses the top fiber.
	assert.Zero(t, RequiredSteelArea(sec, 80, 0, FiberTop))
	// A negative moment compresses the bottom fiber.
	assert.Zero(t, RequiredSteelArea(sec, -80, 0, FiberBottom))

	// Enough compression cancels the tension force entirely.
	assert.Zero(t, RequiredSteelArea(sec, 80, -300, FiberBottom))

	// Compression reduces the requirement.
	reduced := RequiredSteelArea(sec, 80, -100, FiberBottom)
	assert.Less(t, reduced, as)
	assert.Greater(t, reduced, 0.0)
}
