package verify

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/section"
)

// historicalColumn adds 2⌀16 compression bars to the reference beam
// (d' = 38 mm).
func historicalColumn(t *testing.T) *section.Section {
	t.Helper()
	sec := historicalBeam(t)
	sec.AddTopBar(16, 2)
	return sec
}

func TestAxialBending(t *testing.T) {
	sec := historicalColumn(t)

	res, err := AxialBending(sec, -500, 30, nil)
	require.NoError(t, err)

	// e0 = 60 mm governs over the 20 mm code minimum.
	assert.InDelta(t, 60.0, res.Eccentricity, 1e-9)
	assert.InDelta(t, 403.23, res.NeutralAxis, 0.01)
	assert.InDelta(t, 552.1, res.LoadResistance, 0.5)
	assert.InDelta(t, 208.7, res.MomentResistanceX, 0.5)
	assert.True(t, res.Verified)
	assert.InDelta(t, 0.9056, res.Utilization, 0.002)
	assert.Greater(t, res.StressSteelCompression, 0.0)
}

func TestAxialBendingMinimumEccentricity(t *testing.T) {
	sec := historicalColumn(t)

	// M = 5 kN·m on 500 kN gives e0 = 10 mm, below the minimum.
	res, err := AxialBending(sec, -500, 5, nil)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.Eccentricity, 1e-9)
}

func TestAxialBendingSlenderness(t *testing.T) {
	sec := historicalColumn(t)

	// l0/h = 14: below the threshold, no second-order term.
	short, err := AxialBending(sec, -500, 30, &AxialOptions{BucklingLength: 7000})
	require.NoError(t, err)
	assert.InDelta(t, 60.0, short.Eccentricity, 1e-9)

	// l0/h = 16: e2 = l0²/(10h) kicks in.
	slender, err := AxialBending(sec, -500, 30, &AxialOptions{BucklingLength: 8000})
	require.NoError(t, err)
	assert.InDelta(t, 60.0+8000.0*8000.0/5000.0, slender.Eccentricity, 1e-9)
	assert.False(t, slender.Verified)
}

func TestAxialBendingRequiresCompression(t *testing.T) {
	sec := historicalColumn(t)

	_, err := AxialBending(sec, 200, 30, nil)
	var cfg *section.ConfigError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfg))
}

func TestBiaxialReducesToUniaxial(t *testing.T) {
	sec := historicalColumn(t)

	uni, err := AxialBending(sec, -500, 30, nil)
	require.NoError(t, err)

	bi, err := BiaxialBending(sec, -500, 30, 0, Santarella, nil)
	require.NoError(t, err)

	// With My = 0 the interaction collapses to the X-axis term.
	want := math.Pow(30/uni.MomentResistanceX, 1.5)
	assert.InDelta(t, want, bi.Utilization, 1e-9)
	assert.True(t, bi.Verified)
	assert.True(t, bi.Biaxial)
	assert.InDelta(t, uni.MomentResistanceX, bi.MomentResistanceX, 1e-9)
}

func TestBiaxialExponentByMethod(t *testing.T) {
	sec := historicalColumn(t)

	s, err := BiaxialBending(sec, -500, 30, 20, Santarella, nil)
	require.NoError(t, err)
	g, err := BiaxialBending(sec, -500, 30, 20, Giangreco, nil)
	require.NoError(t, err)

	// Ratios below one: the square decays faster than the 1.5 power.
	assert.Less(t, g.Utilization, s.Utilization)

	_, err = BiaxialBending(sec, -500, 30, 20, Method("bresler"), nil)
	require.Error(t, err)
}
