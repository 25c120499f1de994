package section

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/material"
	"github.com/alexiusacademia/gorcv/internal/rd2229"
)

func historicalMaterials(t *testing.T) (*material.Concrete, *material.Steel) {
	t.Helper()
	c, err := material.NewHistoricalConcrete(280, rd2229.CementNormal, 0.50)
	require.NoError(t, err)
	s, err := material.NewHistoricalSteel(1400, material.Soft)
	require.NoError(t, err)
	return c, s
}

func rectangularSection(t *testing.T, concrete *material.Concrete, steel *material.Steel) *Section {
	t.Helper()
	sh, err := NewShape("rettangolare", 300, 500)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 30)
	require.NoError(t, err)
	sec.AddBottomBar(16, 4) // d = 462 mm
	return sec
}

func TestNeutralAxisRectangularHistorical(t *testing.T) {
	concrete, steel := historicalMaterials(t)
	sec := rectangularSection(t, concrete, steel)

	// n = 2_000_000 / 320_833 = 6.234; quadratic root of
	// 150 x^2 + n As x - n As 462 = 0.
	res, err := sec.NeutralAxis(80, 0)
	require.NoError(t, err)

	assert.InDelta(t, 108.67, res.X, 0.05)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, SteelGoverned, res.Mode)
	assert.Greater(t, res.EpsSteelBottom, steel.YieldStrain())
	assert.Less(t, res.EpsConcreteBottom, 0.0)

	// Plane section through x with the top fiber at the plateau:
	// eps_s = 0.002 (462 - 108.67) / 108.67.
	assert.InDelta(t, 0.002, res.EpsConcreteTop, 1e-12)
	assert.InDelta(t, 0.006503, res.EpsSteelBottom, 1e-4)
	assert.InDelta(t, -0.002*(500-res.X)/res.X, res.EpsConcreteBottom, 1e-12)
}

func TestNeutralAxisRectangularModern(t *testing.T) {
	concrete, err := material.NewConcrete(15)
	require.NoError(t, err)
	steel, err := material.NewSteelFromType("FeB32k")
	require.NoError(t, err)
	sec := rectangularSection(t, concrete, steel)

	res, err := sec.NeutralAxis(40, 0)
	require.NoError(t, err)

	assert.InDelta(t, 129.06, res.X, 0.05)
	assert.True(t, res.Converged)
	assert.InDelta(t, 0.002, res.EpsConcreteTop, 1e-12)
	assert.InDelta(t, 0.00516, res.EpsSteelBottom, 1e-4)

	// 5.2e-3 is well past the FeB32k yield strain, so the steel side
	// governs even on the analytic path.
	assert.Equal(t, SteelGoverned, res.Mode)
}

func TestNeutralAxisTeeEquilibrium(t *testing.T) {
	concrete, steel := historicalMaterials(t)
	sh, err := NewShape("T", 300, 500, 1000, 120)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 30)
	require.NoError(t, err)
	sec.AddBottomBar(16, 4)

	// With the axial force balancing the compressed-flange resultant at
	// the gross centroid, the starting point is already the solution.
	res, err := sec.NeutralAxis(50, -495.4395)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 181.7949, res.X, 1e-3)
	assert.Equal(t, SteelGoverned, res.Mode)
	assert.InDelta(t, 0.002, res.EpsConcreteTop, 1e-12)
}

func TestNeutralAxisTeeNonConvergence(t *testing.T) {
	concrete, steel := historicalMaterials(t)
	sh, err := NewShape("T", 300, 500, 1000, 120)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 30)
	require.NoError(t, err)
	sec.AddBottomBar(16, 4)

	// Pure bending on a wide flange: the damped correction oscillates
	// and the budget runs out. The last iterate is still reported.
	res, err := sec.NeutralAxis(30, 0)
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, maxIterations, res.Iterations)
	assert.GreaterOrEqual(t, res.X, minNeutralDepth)
	assert.LessOrEqual(t, res.X, 500.0-edgeMargin)
}

func TestNeutralAxisRequiresTensionSteel(t *testing.T) {
	concrete, steel := historicalMaterials(t)
	sh, err := NewShape("rettangolare", 300, 500)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 30)
	require.NoError(t, err)

	_, err = sec.NeutralAxis(50, 0)
	var cfg *ConfigError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfg))
}
