package section

// Rectangular is the b×h solid rectangle, the only variant with a
// closed-form neutral-axis solution.
type Rectangular struct {
	B float64 // width (mm)
	H float64 // height (mm)
}

// NewRectangular builds a validated rectangular shape.
func NewRectangular(b, h float64) (*Rectangular, error) {
	s := &Rectangular{B: b, H: h}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Rectangular) Kind() string { return "rettangolare" }

func (s *Rectangular) Validate() error {
	if s.B <= 0 || s.H <= 0 {
		return geometryErrorf("rectangular section: dimensions must be positive (b=%.4g, h=%.4g)", s.B, s.H)
	}
	return nil
}

func (s *Rectangular) slabs() []slab {
	return []slab{{0, s.H, s.B}}
}

func (s *Rectangular) Properties() GeometricProperties {
	return propertiesFromSlabs(s.slabs(), s.H, s.H*s.B*s.B*s.B/12)
}

func (s *Rectangular) Contour() []Point {
	return []Point{
		{0, 0}, {s.B, 0}, {s.B, s.H}, {0, s.H}, {0, 0},
	}
}

func (s *Rectangular) Dimensions() map[string]float64 {
	return map[string]float64{"b": s.B, "h": s.H, "bw": s.B}
}

func (s *Rectangular) CompressedArea(x float64) (float64, float64) {
	return compressedFromSlabs(s.slabs(), x)
}
