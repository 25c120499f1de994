package section

import "math"

// contourSegments is the polygonization used for circular contours.
const contourSegments = 48

func circlePoints(cx, cy, r float64, clockwise bool) []Point {
	pts := make([]Point, 0, contourSegments+1)
	for i := 0; i <= contourSegments; i++ {
		theta := 2 * math.Pi * float64(i) / contourSegments
		if clockwise {
			theta = -theta
		}
		pts = append(pts, Point{cx + r*math.Cos(theta), cy + r*math.Sin(theta)})
	}
	return pts
}

// Circular is a solid circle of diameter D.
type Circular struct {
	D float64 // diameter (mm)
}

// NewCircular builds a validated circular shape.
func NewCircular(d float64) (*Circular, error) {
	s := &Circular{D: d}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Circular) Kind() string { return "circolare" }

func (s *Circular) Validate() error {
	if s.D <= 0 {
		return geometryErrorf("circular section: diameter must be positive, got %.4g", s.D)
	}
	return nil
}

func (s *Circular) Properties() GeometricProperties {
	r := s.D / 2
	area := math.Pi * r * r
	ix := math.Pi * math.Pow(s.D, 4) / 64
	return GeometricProperties{
		Area:      area,
		CentroidY: r,
		Ix:        ix,
		Iy:        ix,
		Wtop:      ix / r,
		Wbottom:   ix / r,
	}
}

func (s *Circular) Contour() []Point {
	r := s.D / 2
	return circlePoints(0, r, r, false)
}

func (s *Circular) Dimensions() map[string]float64 {
	return map[string]float64{"b": s.D, "h": s.D, "bw": s.D, "D": s.D}
}

// circleCompressed returns the compressed area of a circle of radius r
// cut at depth x below its top, using the exact circular-segment area
// A = r²(θ − sinθ)/2. The centroid is approximated at half the
// compressed depth (above mid-height) or midway between center and
// axis (below).
func circleCompressed(r, x float64) (float64, float64) {
	switch {
	case x <= 0:
		return 0, 0
	case x >= 2*r:
		return math.Pi * r * r, r
	}
	hSeg := x
	if x >= r {
		hSeg = 2*r - x
	}
	theta := math.Pi
	if hSeg < r {
		theta = 2 * math.Acos((r-hSeg)/r)
	}
	seg := r * r * (theta - math.Sin(theta)) / 2

	if x < r {
		return seg, x / 2
	}
	return math.Pi*r*r - seg, (r + x) / 2
}

func (s *Circular) CompressedArea(x float64) (float64, float64) {
	return circleCompressed(s.D/2, x)
}

// HollowCircular is an annulus with outer diameter De and inner
// diameter Di.
type HollowCircular struct {
	De float64 // outer diameter (mm)
	Di float64 // inner diameter (mm)
}

// NewHollowCircular builds a validated hollow circular shape.
func NewHollowCircular(de, di float64) (*HollowCircular, error) {
	s := &HollowCircular{De: de, Di: di}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HollowCircular) Kind() string { return "circolare_cava" }

func (s *HollowCircular) Validate() error {
	if s.De <= 0 || s.Di <= 0 {
		return geometryErrorf("hollow circular section: diameters must be positive")
	}
	if s.Di >= s.De {
		return geometryErrorf("hollow circular section: inner diameter %.4g must be less than outer %.4g", s.Di, s.De)
	}
	return nil
}

func (s *HollowCircular) Properties() GeometricProperties {
	re := s.De / 2
	area := math.Pi * (s.De*s.De - s.Di*s.Di) / 4
	ix := math.Pi * (math.Pow(s.De, 4) - math.Pow(s.Di, 4)) / 64
	return GeometricProperties{
		Area:      area,
		CentroidY: re,
		Ix:        ix,
		Iy:        ix,
		Wtop:      ix / re,
		Wbottom:   ix / re,
	}
}

func (s *HollowCircular) Contour() []Point {
	re, ri := s.De/2, s.Di/2
	outer := circlePoints(0, re, re, false)
	inner := circlePoints(0, re, ri, true)
	return append(outer, inner...)
}

func (s *HollowCircular) Dimensions() map[string]float64 {
	return map[string]float64{
		"b": s.De, "h": s.De, "bw": s.De - s.Di,
		"De": s.De, "Di": s.Di,
	}
}

// CompressedArea subtracts the inner segment from the outer one. The
// void only starts losing material once the cut passes the wall
// thickness (De − Di)/2.
func (s *HollowCircular) CompressedArea(x float64) (float64, float64) {
	if x <= 0 {
		return 0, 0
	}
	re, ri := s.De/2, s.Di/2
	t := re - ri
	aOuter, cOuter := circleCompressed(re, math.Min(x, s.De))
	aInner, cInner := circleCompressed(ri, x-t)
	area := aOuter - aInner
	if aInner > 0 {
		return area, (aOuter*cOuter - aInner*(t+cInner)) / area
	}
	return area, cOuter
}
