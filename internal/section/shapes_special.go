package section

// LSection is an angle: a horizontal leg at the top, a vertical web on
// one side and a bottom flange.
type LSection struct {
	B1 float64 // top leg width (mm)
	T1 float64 // top leg thickness (mm)
	H  float64 // overall height (mm)
	B2 float64 // bottom flange width (mm)
	T2 float64 // web and bottom flange thickness (mm)
}

// NewLSection builds a validated L shape.
func NewLSection(b1, t1, h, b2, t2 float64) (*LSection, error) {
	s := &LSection{B1: b1, T1: t1, H: h, B2: b2, T2: t2}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LSection) Kind() string { return "L" }

func (s *LSection) Validate() error {
	if s.B1 <= 0 || s.T1 <= 0 || s.H <= 0 || s.B2 <= 0 || s.T2 <= 0 {
		return geometryErrorf("L section: dimensions must be positive")
	}
	if s.T1+s.T2 >= s.H {
		return geometryErrorf("L section: leg thicknesses %.4g+%.4g must be less than height %.4g", s.T1, s.T2, s.H)
	}
	if s.T2 > s.B1 || s.T2 > s.B2 {
		return geometryErrorf("L section: web thickness %.4g must not exceed the leg widths", s.T2)
	}
	return nil
}

// rects returns the three rectangles of the decomposition with their
// horizontal extents, all flush with the web side at x = 0.
func (s *LSection) rects() []struct{ Y0, Y1, X0, X1 float64 } {
	return []struct{ Y0, Y1, X0, X1 float64 }{
		{0, s.T1, 0, s.B1},
		{s.T1, s.H - s.T2, 0, s.T2},
		{s.H - s.T2, s.H, 0, s.B2},
	}
}

func (s *LSection) slabs() []slab {
	return []slab{
		{0, s.T1, s.B1},
		{s.T1, s.H - s.T2, s.T2},
		{s.H - s.T2, s.H, s.B2},
	}
}

func (s *LSection) Properties() GeometricProperties {
	// Iy needs the horizontal centroid: the rectangles are not
	// symmetric about a common vertical axis.
	var area, momX float64
	for _, r := range s.rects() {
		a := (r.Y1 - r.Y0) * (r.X1 - r.X0)
		area += a
		momX += a * (r.X0 + r.X1) / 2
	}
	xG := momX / area
	var iy float64
	for _, r := range s.rects() {
		w := r.X1 - r.X0
		t := r.Y1 - r.Y0
		xc := (r.X0 + r.X1) / 2
		iy += t*w*w*w/12 + t*w*(xc-xG)*(xc-xG)
	}
	return propertiesFromSlabs(s.slabs(), s.H, iy)
}

func (s *LSection) Contour() []Point {
	return []Point{
		{0, 0}, {s.B1, 0},
		{s.B1, s.T1}, {s.T2, s.T1},
		{s.T2, s.H - s.T2}, {s.B2, s.H - s.T2},
		{s.B2, s.H}, {0, s.H},
		{0, 0},
	}
}

func (s *LSection) Dimensions() map[string]float64 {
	return map[string]float64{
		"b": s.B1, "h": s.H, "bw": s.T2,
		"b1": s.B1, "t1": s.T1, "b2": s.B2, "t2": s.T2,
	}
}

func (s *LSection) CompressedArea(x float64) (float64, float64) {
	return compressedFromSlabs(s.slabs(), x)
}

// Channel is the U variant: full-width flanges at top and bottom joined
// by a central web.
type Channel struct {
	B  float64 // flange width (mm)
	H  float64 // overall height (mm)
	Tf float64 // flange thickness (mm)
	Tw float64 // web thickness (mm)
}

// NewChannel builds a validated U/channel shape.
func NewChannel(b, h, tf, tw float64) (*Channel, error) {
	s := &Channel{B: b, H: h, Tf: tf, Tw: tw}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Channel) Kind() string { return "U" }

func (s *Channel) Validate() error {
	if s.B <= 0 || s.H <= 0 || s.Tf <= 0 || s.Tw <= 0 {
		return geometryErrorf("U section: dimensions must be positive")
	}
	if 2*s.Tf >= s.H {
		return geometryErrorf("U section: flange thickness %.4g must be less than half the height %.4g", s.Tf, s.H)
	}
	if s.Tw >= s.B {
		return geometryErrorf("U section: web thickness %.4g must be less than width %.4g", s.Tw, s.B)
	}
	return nil
}

func (s *Channel) slabs() []slab {
	return []slab{
		{0, s.Tf, s.B},
		{s.Tf, s.H - s.Tf, s.Tw},
		{s.H - s.Tf, s.H, s.B},
	}
}

func (s *Channel) Properties() GeometricProperties {
	iy := 2*s.Tf*s.B*s.B*s.B/12 + (s.H-2*s.Tf)*s.Tw*s.Tw*s.Tw/12
	return propertiesFromSlabs(s.slabs(), s.H, iy)
}

func (s *Channel) Contour() []Point {
	return []Point{
		{-s.B / 2, 0}, {s.B / 2, 0},
		{s.B / 2, s.Tf}, {s.Tw / 2, s.Tf},
		{s.Tw / 2, s.H - s.Tf}, {s.B / 2, s.H - s.Tf},
		{s.B / 2, s.H}, {-s.B / 2, s.H},
		{-s.B / 2, s.H - s.Tf}, {-s.Tw / 2, s.H - s.Tf},
		{-s.Tw / 2, s.Tf}, {-s.B / 2, s.Tf},
		{-s.B / 2, 0},
	}
}

func (s *Channel) Dimensions() map[string]float64 {
	return map[string]float64{"b": s.B, "h": s.H, "bw": s.Tw, "tf": s.Tf, "tw": s.Tw}
}

func (s *Channel) CompressedArea(x float64) (float64, float64) {
	return compressedFromSlabs(s.slabs(), x)
}

// HollowRect is a box section with independent top and bottom wall
// thicknesses.
type HollowRect struct {
	B  float64 // outer width (mm)
	H  float64 // outer height (mm)
	Tw float64 // thickness of each vertical wall (mm)
	Ts float64 // top wall thickness (mm)
	Ti float64 // bottom wall thickness (mm)
}

// NewHollowRect builds a validated hollow rectangular shape.
func NewHollowRect(b, h, tw, ts, ti float64) (*HollowRect, error) {
	s := &HollowRect{B: b, H: h, Tw: tw, Ts: ts, Ti: ti}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HollowRect) Kind() string { return "rett_cava" }

func (s *HollowRect) Validate() error {
	if s.B <= 0 || s.H <= 0 || s.Tw <= 0 || s.Ts <= 0 || s.Ti <= 0 {
		return geometryErrorf("hollow rectangular section: dimensions must be positive")
	}
	if 2*s.Tw >= s.B {
		return geometryErrorf("hollow rectangular section: wall thickness %.4g must be less than half the width %.4g", s.Tw, s.B)
	}
	if s.Ts+s.Ti >= s.H {
		return geometryErrorf("hollow rectangular section: wall thicknesses %.4g+%.4g must be less than height %.4g", s.Ts, s.Ti, s.H)
	}
	return nil
}

func (s *HollowRect) inner() (bInt, hInt float64) {
	return s.B - 2*s.Tw, s.H - s.Ts - s.Ti
}

func (s *HollowRect) slabs() []slab {
	_, hInt := s.inner()
	return []slab{
		{0, s.Ts, s.B},
		{s.Ts, s.Ts + hInt, 2 * s.Tw},
		{s.Ts + hInt, s.H, s.B},
	}
}

func (s *HollowRect) Properties() GeometricProperties {
	bInt, hInt := s.inner()
	// Outer minus inner covers both webs for the vertical axis.
	iy := s.Ts*s.B*s.B*s.B/12 + s.Ti*s.B*s.B*s.B/12 +
		hInt*(s.B*s.B*s.B-bInt*bInt*bInt)/12
	return propertiesFromSlabs(s.slabs(), s.H, iy)
}

func (s *HollowRect) Contour() []Point {
	bInt, hInt := s.inner()
	outer := []Point{
		{-s.B / 2, 0}, {s.B / 2, 0}, {s.B / 2, s.H}, {-s.B / 2, s.H}, {-s.B / 2, 0},
	}
	// Inner loop in reverse winding.
	inner := []Point{
		{-bInt / 2, s.Ts}, {-bInt / 2, s.Ts + hInt},
		{bInt / 2, s.Ts + hInt}, {bInt / 2, s.Ts},
		{-bInt / 2, s.Ts},
	}
	return append(outer, inner...)
}

func (s *HollowRect) Dimensions() map[string]float64 {
	return map[string]float64{
		"b": s.B, "h": s.H, "bw": 2 * s.Tw,
		"tw": s.Tw, "ts": s.Ts, "ti": s.Ti,
	}
}

func (s *HollowRect) CompressedArea(x float64) (float64, float64) {
	return compressedFromSlabs(s.slabs(), x)
}
