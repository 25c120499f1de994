package section

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/material"
	"github.com/alexiusacademia/gorcv/internal/rd2229"
)

func testMaterials(t *testing.T) (*material.Concrete, *material.Steel) {
	t.Helper()
	c, err := material.NewConcrete(25)
	require.NoError(t, err)
	s, err := material.NewSteelFromType("FeB38k")
	require.NoError(t, err)
	return c, s
}

func TestRectangularProperties(t *testing.T) {
	sh, err := NewShape("rettangolare", 300, 500)
	require.NoError(t, err)

	p := sh.Properties()
	assert.InDelta(t, 150000.0, p.Area, 1e-6)
	assert.InDelta(t, 250.0, p.CentroidY, 1e-6)
	assert.InDelta(t, 3.125e9, p.Ix, 1e-3)
	assert.InDelta(t, 1.125e9, p.Iy, 1e-3)
	assert.InDelta(t, 1.25e7, p.Wtop, 1e-3)
	assert.InDelta(t, 1.25e7, p.Wbottom, 1e-3)
}

func TestTeeProperties(t *testing.T) {
	sh, err := NewShape("T", 300, 500, 1000, 120)
	require.NoError(t, err)
	assert.Equal(t, "T", sh.Kind())

	p := sh.Properties()
	assert.InDelta(t, 234000.0, p.Area, 1e-6)
	assert.InDelta(t, 181.7949, p.CentroidY, 1e-3)

	// Axis through the flange: full flange plus a triangular web wedge.
	area, yc := sh.CompressedArea(200)
	assert.InDelta(t, 144000.0, area, 1e-6)
	assert.InDelta(t, 74.444, yc, 1e-2)
}

func TestHollowRectProperties(t *testing.T) {
	sh, err := NewShape("rett_cava", 400, 600, 80, 100, 100)
	require.NoError(t, err)

	p := sh.Properties()
	// Outer 400x600 minus the 240x400 void.
	assert.InDelta(t, 144000.0, p.Area, 1e-6)
	assert.InDelta(t, 300.0, p.CentroidY, 1e-6)
}

func TestCircularCompressedArea(t *testing.T) {
	sh, err := NewShape("circolare", 400)
	require.NoError(t, err)

	p := sh.Properties()
	assert.InDelta(t, math.Pi*200*200, p.Area, 1e-6)
	assert.InDelta(t, math.Pi*math.Pow(400, 4)/64, p.Ix, 1.0)

	// Circular segment at x = r/2: theta = 2*acos(1/2).
	theta := 2 * math.Acos(0.5)
	want := 200.0 * 200.0 * (theta - math.Sin(theta)) / 2
	area, yc := sh.CompressedArea(100)
	assert.InDelta(t, want, area, 1e-6)
	assert.InDelta(t, 50.0, yc, 1e-9)
}

func TestHollowCircularCompressedArea(t *testing.T) {
	sh, err := NewShape("circolare_cava", 500, 300)
	require.NoError(t, err)

	// Above the 100 mm wall the void has not started: the compressed
	// zone is the plain outer segment.
	theta := 2 * math.Acos((250.0 - 80.0) / 250.0)
	want := 250.0 * 250.0 * (theta - math.Sin(theta)) / 2
	area, yc := sh.CompressedArea(80)
	assert.InDelta(t, want, area, 1e-6)
	assert.InDelta(t, 40.0, yc, 1e-9)

	// Past the wall the inner segment comes off, offset by the wall
	// thickness.
	thO := 2 * math.Acos((250.0 - 200.0) / 250.0)
	aO := 250.0 * 250.0 * (thO - math.Sin(thO)) / 2
	thI := 2 * math.Acos((150.0 - 100.0) / 150.0)
	aI := 150.0 * 150.0 * (thI - math.Sin(thI)) / 2
	area, yc = sh.CompressedArea(200)
	assert.InDelta(t, aO-aI, area, 1e-6)
	assert.InDelta(t, (aO*100-aI*150)/(aO-aI), yc, 1e-6)

	// Full depth recovers the annulus.
	area, yc = sh.CompressedArea(500)
	assert.InDelta(t, math.Pi*(250*250-150*150), area, 1e-6)
	assert.InDelta(t, 250.0, yc, 1e-9)
}

func TestContoursAreClosed(t *testing.T) {
	cases := map[string][]float64{
		"rettangolare":   {300, 500},
		"T":              {300, 500, 1000, 120},
		"I":              {200, 600, 400, 100, 500, 120},
		"L":              {300, 120, 500, 250, 100},
		"U":              {400, 500, 100, 80},
		"rett_cava":      {400, 600, 80, 100, 100},
		"circolare":      {400},
		"circolare_cava": {500, 300},
	}
	for kind, params := range cases {
		sh, err := NewShape(kind, params...)
		require.NoError(t, err, kind)
		pts := sh.Contour()
		require.GreaterOrEqual(t, len(pts), 4, kind)
		assert.Equal(t, pts[0], pts[len(pts)-1], "contour of %q must close", kind)
	}
}

func TestFactoryErrors(t *testing.T) {
	_, err := NewShape("esagonale", 300, 500)
	var cfg *ConfigError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfg))

	_, err = NewShape("T", 300, 500)
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfg), "missing parameters")

	// Walls thicker than the section: dimensionally impossible.
	_, err = NewShape("rett_cava", 400, 600, 250, 100, 100)
	var geo *GeometryError
	require.Error(t, err)
	assert.True(t, errors.As(err, &geo))
}

func TestSectionRotate90(t *testing.T) {
	concrete, steel := testMaterials(t)
	sh, err := NewShape("rettangolare", 300, 500)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 40)
	require.NoError(t, err)

	orig := sec.Properties()
	sec.Rotate90()
	require.True(t, sec.Rotated())

	dims := sec.Dimensions()
	assert.InDelta(t, 500.0, dims["b"], 1e-9)
	assert.InDelta(t, 300.0, dims["h"], 1e-9)

	rot := sec.Properties()
	assert.InDelta(t, orig.Iy, rot.Ix, 1e-6)
	assert.InDelta(t, orig.Ix, rot.Iy, 1e-6)
	assert.InDelta(t, 150.0, rot.CentroidY, 1e-9)

	for i, p := range sec.Contour() {
		up := sh.Contour()[i]
		assert.InDelta(t, up.Y, p.X, 1e-9)
		assert.InDelta(t, up.X, p.Y, 1e-9)
	}

	sec.Rotate90()
	assert.False(t, sec.Rotated())
	assert.Equal(t, orig, sec.Properties())
}

func TestRotatedTeeCompressedArea(t *testing.T) {
	concrete, steel := testMaterials(t)
	sh, err := NewShape("T", 300, 500, 1000, 120)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 30)
	require.NoError(t, err)
	sec.Rotate90()

	// Depth now runs across the 1000 mm flange. A shallow cut picks up
	// a 200x120 flange strip only.
	a, c := sec.CompressedArea(200)
	assert.InDelta(t, 24000.0, a, 1e-6)
	assert.InDelta(t, 100.0, c, 1e-6)

	// Past 350 mm the web joins in: 600x120 of flange plus 250x380 of
	// web, centroid at 399.55 mm.
	a, c = sec.CompressedArea(600)
	assert.InDelta(t, 167000.0, a, 1e-6)
	assert.InDelta(t, 399.55, c, 0.01)

	// Full depth recovers the gross area instead of saturating at the
	// unrotated 500 mm height.
	a, _ = sec.CompressedArea(1000)
	assert.InDelta(t, sec.Properties().Area, a, 1e-6)
}

func TestRotatedLSectionCentroid(t *testing.T) {
	concrete, steel := testMaterials(t)
	sh, err := NewLSection(200, 40, 300, 120, 40)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 30)
	require.NoError(t, err)
	sec.Rotate90()

	// The transposed depth axis is the unrotated horizontal one, so the
	// centroid sits at the L's horizontal centroid xG = 1264000/21600,
	// not at half the width.
	p := sec.Properties()
	assert.InDelta(t, 58.5185, p.CentroidY, 1e-3)
	assert.InDelta(t, sh.Properties().Iy/p.CentroidY, p.Wtop, 1e-6)
	assert.InDelta(t, sh.Properties().Iy/(200-p.CentroidY), p.Wbottom, 1e-6)
}

func TestRotatedTeeNeutralAxis(t *testing.T) {
	concrete, err := material.NewHistoricalConcrete(280, rd2229.CementNormal, 0.50)
	require.NoError(t, err)
	steel, err := material.NewHistoricalSteel(1400, material.Soft)
	require.NoError(t, err)
	sh, err := NewShape("T", 300, 500, 1000, 120)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 30)
	require.NoError(t, err)
	sec.Rotate90()
	sec.AddBottomBar(16, 4)

	res, err := sec.NeutralAxis(60, 0)
	require.NoError(t, err)

	// The axis stays inside the rotated 1000 mm depth and the solver
	// sees the same clipped geometry the section reports.
	assert.GreaterOrEqual(t, res.X, minNeutralDepth)
	assert.LessOrEqual(t, res.X, 990.0)
	area, _ := sec.CompressedArea(res.X)
	assert.Less(t, area, sec.Properties().Area)
	assert.InDelta(t, 0.002, res.EpsConcreteTop, 1e-12)
}

func TestHomogenizationOverride(t *testing.T) {
	concrete, steel := testMaterials(t)
	sh, err := NewShape("rettangolare", 300, 500)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 40)
	require.NoError(t, err)

	auto := steel.Modulus / concrete.Modulus
	assert.InDelta(t, auto, sec.Homogenization(), 1e-9)

	sec.SetHomogenization(15)
	assert.InDelta(t, 15.0, sec.Homogenization(), 1e-9)

	sec.ClearHomogenization()
	assert.InDelta(t, auto, sec.Homogenization(), 1e-9)
}

func TestReinforcementDepths(t *testing.T) {
	concrete, steel := testMaterials(t)
	sh, err := NewShape("rettangolare", 300, 500)
	require.NoError(t, err)
	sec, err := New(sh, concrete, steel, 40)
	require.NoError(t, err)

	// No top bars yet: cover-based estimate.
	assert.InDelta(t, 55.0, sec.TopDepth(), 1e-9)

	sec.AddBottomBar(16, 2) // y = 500 - 40 - 8 = 452
	sec.AddBottomBarAt(16, 2, 420)
	assert.InDelta(t, 4*math.Pi*64, sec.As(), 1e-6)
	assert.InDelta(t, 436.0, sec.EffectiveDepth(), 1e-6)

	sec.AddTopBar(12, 2)
	assert.InDelta(t, 46.0, sec.TopDepth(), 1e-9)
	assert.InDelta(t, 2*math.Pi*36, sec.AsPrime(), 1e-6)

	ratio := 100 * sec.As() / (300 * 436.0)
	assert.InDelta(t, ratio, sec.SteelRatio(), 1e-9)
}

func TestSectionRequiresMaterials(t *testing.T) {
	sh, err := NewShape("rettangolare", 300, 500)
	require.NoError(t, err)

	_, err = New(sh, nil, nil, 40)
	var cfg *ConfigError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfg))
}
