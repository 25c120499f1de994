package section

// Tee is a T section with the flange at the top (compression) side.
type Tee struct {
	Bw float64 // web width (mm)
	H  float64 // overall height (mm)
	Bf float64 // flange width (mm)
	Tf float64 // flange thickness (mm)
}

// NewTee builds a validated T shape.
func NewTee(bw, h, bf, tf float64) (*Tee, error) {
	s := &Tee{Bw: bw, H: h, Bf: bf, Tf: tf}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Tee) Kind() string { return "T" }

func (s *Tee) Validate() error {
	if s.Bw <= 0 || s.H <= 0 || s.Bf <= 0 || s.Tf <= 0 {
		return geometryErrorf("T section: dimensions must be positive")
	}
	if s.Tf >= s.H {
		return geometryErrorf("T section: flange thickness %.4g must be less than height %.4g", s.Tf, s.H)
	}
	if s.Bf < s.Bw {
		return geometryErrorf("T section: flange width %.4g must not be less than web width %.4g", s.Bf, s.Bw)
	}
	return nil
}

func (s *Tee) slabs() []slab {
	return []slab{
		{0, s.Tf, s.Bf},
		{s.Tf, s.H, s.Bw},
	}
}

func (s *Tee) Properties() GeometricProperties {
	iy := s.Tf*s.Bf*s.Bf*s.Bf/12 + (s.H-s.Tf)*s.Bw*s.Bw*s.Bw/12
	return propertiesFromSlabs(s.slabs(), s.H, iy)
}

func (s *Tee) Contour() []Point {
	return []Point{
		{-s.Bf / 2, 0}, {s.Bf / 2, 0},
		{s.Bf / 2, s.Tf}, {s.Bw / 2, s.Tf},
		{s.Bw / 2, s.H}, {-s.Bw / 2, s.H},
		{-s.Bw / 2, s.Tf}, {-s.Bf / 2, s.Tf},
		{-s.Bf / 2, 0},
	}
}

func (s *Tee) Dimensions() map[string]float64 {
	return map[string]float64{"b": s.Bf, "h": s.H, "bw": s.Bw, "bf": s.Bf, "tf": s.Tf}
}

func (s *Tee) CompressedArea(x float64) (float64, float64) {
	return compressedFromSlabs(s.slabs(), x)
}

// ISection is a double-T with independent top and bottom flanges.
type ISection struct {
	Bw    float64 // web width (mm)
	H     float64 // overall height (mm)
	BfTop float64 // top flange width (mm)
	TfTop float64 // top flange thickness (mm)
	BfBot float64 // bottom flange width (mm)
	TfBot float64 // bottom flange thickness (mm)
}

// NewISection builds a validated I/double-T shape.
func NewISection(bw, h, bfTop, tfTop, bfBot, tfBot float64) (*ISection, error) {
	s := &ISection{Bw: bw, H: h, BfTop: bfTop, TfTop: tfTop, BfBot: bfBot, TfBot: tfBot}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ISection) Kind() string { return "I" }

func (s *ISection) Validate() error {
	if s.Bw <= 0 || s.H <= 0 || s.BfTop <= 0 || s.TfTop <= 0 || s.BfBot <= 0 || s.TfBot <= 0 {
		return geometryErrorf("I section: dimensions must be positive")
	}
	if s.TfTop+s.TfBot >= s.H {
		return geometryErrorf("I section: flange thicknesses %.4g+%.4g must be less than height %.4g", s.TfTop, s.TfBot, s.H)
	}
	if s.Bw > s.BfTop || s.Bw > s.BfBot {
		return geometryErrorf("I section: web width %.4g must not exceed the flange widths", s.Bw)
	}
	return nil
}

func (s *ISection) slabs() []slab {
	return []slab{
		{0, s.TfTop, s.BfTop},
		{s.TfTop, s.H - s.TfBot, s.Bw},
		{s.H - s.TfBot, s.H, s.BfBot},
	}
}

func (s *ISection) Properties() GeometricProperties {
	iy := s.TfTop*s.BfTop*s.BfTop*s.BfTop/12 +
		(s.H-s.TfTop-s.TfBot)*s.Bw*s.Bw*s.Bw/12 +
		s.TfBot*s.BfBot*s.BfBot*s.BfBot/12
	return propertiesFromSlabs(s.slabs(), s.H, iy)
}

func (s *ISection) Contour() []Point {
	return []Point{
		{-s.BfTop / 2, 0}, {s.BfTop / 2, 0},
		{s.BfTop / 2, s.TfTop}, {s.Bw / 2, s.TfTop},
		{s.Bw / 2, s.H - s.TfBot}, {s.BfBot / 2, s.H - s.TfBot},
		{s.BfBot / 2, s.H}, {-s.BfBot / 2, s.H},
		{-s.BfBot / 2, s.H - s.TfBot}, {-s.Bw / 2, s.H - s.TfBot},
		{-s.Bw / 2, s.TfTop}, {-s.BfTop / 2, s.TfTop},
		{-s.BfTop / 2, 0},
	}
}

func (s *ISection) Dimensions() map[string]float64 {
	return map[string]float64{
		"b": s.BfTop, "h": s.H, "bw": s.Bw,
		"bf_sup": s.BfTop, "tf_sup": s.TfTop,
		"bf_inf": s.BfBot, "tf_inf": s.TfBot,
	}
}

func (s *ISection) CompressedArea(x float64) (float64, float64) {
	return compressedFromSlabs(s.slabs(), x)
}
