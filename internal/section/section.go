package section

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/material"
)

// Section is a shape with materials and reinforcement attached. It is
// the only stateful object of the engine: bar lists grow by appends,
// the rotation flag toggles, and the homogenization coefficient can be
// overridden. A section is owned by a single caller.
type Section struct {
	shape Shape

	Concrete *material.Concrete
	Steel    *material.Steel
	Cover    float64 // mm

	BottomBars []Bar
	TopBars    []Bar
	Stirrups   *Stirrup
	Bent       *BentBars

	nOverride *float64
	rotated   bool
}

// New attaches materials to a validated shape.
func New(shape Shape, concrete *material.Concrete, steel *material.Steel, cover float64) (*Section, error) {
	if shape == nil {
		return nil, configErrorf("section requires a shape")
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if concrete == nil || steel == nil {
		return nil, configErrorf("section requires both concrete and steel materials")
	}
	if cover < 0 {
		return nil, geometryErrorf("cover must not be negative, got %.4g", cover)
	}
	return &Section{
		shape:    shape,
		Concrete: concrete,
		Steel:    steel,
		Cover:    cover,
	}, nil
}

// Shape returns the underlying geometric variant.
func (s *Section) Shape() Shape { return s.shape }

// Kind returns the factory keyword of the shape.
func (s *Section) Kind() string { return s.shape.Kind() }

// Rotated reports whether the section is flipped 90 degrees.
func (s *Section) Rotated() bool { return s.rotated }

// Rotate90 toggles the rotation flag. Width and height swap roles in
// every subsequent query; a second call restores the original state.
func (s *Section) Rotate90() { s.rotated = !s.rotated }

// Homogenization returns the coefficient n. Unless overridden it is the
// modulus ratio Es/Ec of the attached materials.
func (s *Section) Homogenization() float64 {
	if s.nOverride != nil {
		return *s.nOverride
	}
	return s.Steel.Modulus / s.Concrete.Modulus
}

// SetHomogenization overrides the automatic coefficient.
func (s *Section) SetHomogenization(n float64) {
	s.nOverride = &n
}

// ClearHomogenization reactivates the automatic Es/Ec computation.
func (s *Section) ClearHomogenization() {
	s.nOverride = nil
}

// Properties returns the gross-section properties, with Ix and Iy (and
// the fiber moduli) swapped when the section is rotated. The rotated
// centroid comes from the transposed contour, which keeps asymmetric
// shapes honest.
func (s *Section) Properties() GeometricProperties {
	p := s.shape.Properties()
	if !s.rotated || rotationInvariant(s.shape) {
		return p
	}
	cg, depth := contourDepthCentroid(s.Contour())
	return GeometricProperties{
		Area:      p.Area,
		CentroidY: cg,
		Ix:        p.Iy,
		Iy:        p.Ix,
		Wtop:      p.Iy / cg,
		Wbottom:   p.Iy / (depth - cg),
	}
}

// rotationInvariant reports shapes whose geometry does not change
// under a quarter turn, where the exact closed-form rules stay valid.
func rotationInvariant(sh Shape) bool {
	k := sh.Kind()
	return k == "circolare" || k == "circolare_cava"
}

// Contour returns the boundary polygon, transposed when rotated.
func (s *Section) Contour() []Point {
	pts := s.shape.Contour()
	if !s.rotated {
		return pts
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{p.Y, p.X}
	}
	return out
}

// Dimensions returns the named principal dimensions, with "b" and "h"
// swapped when rotated.
func (s *Section) Dimensions() map[string]float64 {
	dims := s.shape.Dimensions()
	if !s.rotated {
		return dims
	}
	out := make(map[string]float64, len(dims))
	for k, v := range dims {
		out[k] = v
	}
	out["b"], out["h"] = dims["h"], dims["b"]
	return out
}

// AddBottomBar appends a bar group on the tension side for positive
// moment, placed at cover + ⌀/2 from the bottom fiber.
func (s *Section) AddBottomBar(diameter float64, count int) {
	h := s.Dimensions()["h"]
	s.AddBottomBarAt(diameter, count, h-s.Cover-diameter/2)
}

// AddBottomBarAt appends a bottom bar group at an explicit depth from
// the top fiber.
func (s *Section) AddBottomBarAt(diameter float64, count int, y float64) {
	s.BottomBars = append(s.BottomBars, Bar{Diameter: diameter, Count: count, Y: y})
}

// AddTopBar appends a bar group on the compression side for positive
// moment, placed at cover + ⌀/2 from the top fiber.
func (s *Section) AddTopBar(diameter float64, count int) {
	s.AddTopBarAt(diameter, count, s.Cover+diameter/2)
}

// AddTopBarAt appends a top bar group at an explicit depth from the top
// fiber.
func (s *Section) AddTopBarAt(diameter float64, count int, y float64) {
	s.TopBars = append(s.TopBars, Bar{Diameter: diameter, Count: count, Y: y})
}

// SetStirrup replaces the stirrup configuration; only one is supported
// at a time.
func (s *Section) SetStirrup(diameter, spacing float64, legs int) {
	s.Stirrups = &Stirrup{Diameter: diameter, Legs: legs, Spacing: spacing}
}

// SetBentBars replaces the bent-bar shear reinforcement.
func (s *Section) SetBentBars(diameter float64, count int, inclination float64) {
	s.Bent = &BentBars{Diameter: diameter, Count: count, Inclination: inclination}
}

// As returns the total bottom steel area (mm²).
func (s *Section) As() float64 {
	var a float64
	for _, b := range s.BottomBars {
		a += b.Area()
	}
	return a
}

// AsPrime returns the total top steel area (mm²).
func (s *Section) AsPrime() float64 {
	var a float64
	for _, b := range s.TopBars {
		a += b.Area()
	}
	return a
}

// EffectiveDepth returns the area-weighted depth of the bottom bars
// from the top fiber. Without bars it degenerates to a geometry-based
// estimate.
func (s *Section) EffectiveDepth() float64 {
	if len(s.BottomBars) == 0 {
		return math.Sqrt(s.Properties().Area) - s.Cover
	}
	var a, m float64
	for _, b := range s.BottomBars {
		a += b.Area()
		m += b.Area() * b.Y
	}
	return m / a
}

// TopDepth returns the area-weighted depth of the top bars from the top
// fiber, or the cover-based estimate without bars.
func (s *Section) TopDepth() float64 {
	if len(s.TopBars) == 0 {
		return s.Cover + 15.0
	}
	var a, m float64
	for _, b := range s.TopBars {
		a += b.Area()
		m += b.Area() * b.Y
	}
	return m / a
}

// SteelRatio returns the bottom-steel geometric ratio in percent,
// relative to web width times effective depth.
func (s *Section) SteelRatio() float64 {
	dims := s.Dimensions()
	bw := dims["bw"]
	if bw <= 0 {
		bw = dims["b"]
	}
	d := s.EffectiveDepth()
	if bw*d <= 0 {
		return 0
	}
	return 100 * s.As() / (bw * d)
}

// CompressedArea exposes the shape's compressed-zone rule. A rotated
// section clips the transposed contour at depth x from the new top
// fiber, so the solver and the shape agree on the same geometry.
func (s *Section) CompressedArea(x float64) (area, centroid float64) {
	if !s.rotated || rotationInvariant(s.shape) {
		return s.shape.CompressedArea(x)
	}
	if x <= 0 {
		return 0, 0
	}
	return compressedFromContour(s.Contour(), x)
}

// CrackedInertia returns the inertia of the cracked, homogenized
// section about the neutral axis at depth x:
//
//	I = b·x³/3 + n·As·(d−x)² + n·As′·(x−d′)²
//
// with b the compression-face width.
func (s *Section) CrackedInertia(x float64) float64 {
	b := s.Dimensions()["b"]
	n := s.Homogenization()
	d := s.EffectiveDepth()
	dp := s.TopDepth()
	i := b * x * x * x / 3
	i += n * s.As() * (d - x) * (d - x)
	if s.AsPrime() > 0 {
		i += n * s.AsPrime() * (x - dp) * (x - dp)
	}
	return i
}
