package section

// Shape is the closed set of geometric variants a section can take.
// Implementations are pure geometry: they know nothing about materials
// or reinforcement.
//
// Contours are closed loops (first point repeated last); hollow shapes
// return the outer loop followed by the inner loop in reverse winding.
type Shape interface {
	// Kind returns the factory keyword of the variant.
	Kind() string

	// Validate checks the dimensional constraints of the variant.
	Validate() error

	// Properties computes the gross-section properties by closed-form
	// decomposition into rectangles and circles (parallel-axis theorem).
	Properties() GeometricProperties

	// Contour returns the boundary polygon.
	Contour() []Point

	// Dimensions returns the named principal dimensions. Every shape
	// provides "b" (overall width), "h" (overall height) and "bw" (web
	// width, used for shear and solver damping).
	Dimensions() map[string]float64

	// CompressedArea returns the concrete area above a neutral axis at
	// depth x and the depth of the compression resultant, using the
	// shape's closed-form compressed-zone rule.
	CompressedArea(x float64) (area, centroid float64)
}

// slab is a full-width horizontal band of a shape, used by the
// rectangle-decomposed variants for the compressed-zone integral.
// Width is the total section width inside [Y0, Y1] (sums both webs of a
// box shape).
type slab struct {
	Y0, Y1 float64 // band limits, depth from the top fiber
	Width  float64
}

// compressedFromSlabs sums the slab areas above the neutral axis x.
// A fully covered slab contributes at its mid-height; the slab the axis
// cuts contributes at one third of its compressed depth, matching the
// triangular stress resultant of the partially stressed band.
func compressedFromSlabs(slabs []slab, x float64) (area, centroid float64) {
	var moment float64
	for _, s := range slabs {
		if x <= s.Y0 {
			continue
		}
		if x >= s.Y1 {
			a := s.Width * (s.Y1 - s.Y0)
			area += a
			moment += a * (s.Y0 + s.Y1) / 2
			continue
		}
		depth := x - s.Y0
		a := s.Width * depth
		area += a
		moment += a * (s.Y0 + depth/3)
	}
	if area <= 0 {
		return 0, 0
	}
	return area, moment / area
}

// propertiesFromSlabs composes area, centroid and the horizontal-axis
// inertia of a slab decomposition (parallel-axis theorem). Iy is not
// derivable from full-width slabs alone, so each shape supplies it.
func propertiesFromSlabs(slabs []slab, height, iy float64) GeometricProperties {
	var area, moment float64
	for _, s := range slabs {
		a := s.Width * (s.Y1 - s.Y0)
		area += a
		moment += a * (s.Y0 + s.Y1) / 2
	}
	yG := moment / area

	var ix float64
	for _, s := range slabs {
		t := s.Y1 - s.Y0
		a := s.Width * t
		yc := (s.Y0 + s.Y1) / 2
		ix += s.Width*t*t*t/12 + a*(yc-yG)*(yc-yG)
	}

	return GeometricProperties{
		Area:      area,
		CentroidY: yG,
		Ix:        ix,
		Iy:        iy,
		Wtop:      ix / yG,
		Wbottom:   ix / (height - yG),
	}
}
