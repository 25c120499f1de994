package section

import "math"

// splitLoops cuts a contour polyline into its closed loops. Hollow
// shapes append the inner boundary after the outer one, and circular
// loops close only to rounding error, so matching uses a tolerance.
func splitLoops(pts []Point) [][]Point {
	const tol = 1e-6
	var loops [][]Point
	start := 0
	for i := start + 1; i < len(pts); i++ {
		if math.Abs(pts[i].X-pts[start].X) < tol && math.Abs(pts[i].Y-pts[start].Y) < tol {
			loops = append(loops, pts[start:i+1])
			start = i + 1
			i = start
		}
	}
	if start < len(pts)-1 {
		loops = append(loops, pts[start:])
	}
	return loops
}

// clipLoopAtDepth keeps the part of a closed loop with Y <= depth. The
// input carries its closing point; the output closes implicitly.
func clipLoopAtDepth(loop []Point, depth float64) []Point {
	var out []Point
	for i := 0; i < len(loop)-1; i++ {
		a, b := loop[i], loop[i+1]
		aIn, bIn := a.Y <= depth, b.Y <= depth
		switch {
		case aIn && bIn:
			out = append(out, b)
		case aIn && !bIn:
			out = append(out, cutAtDepth(a, b, depth))
		case !aIn && bIn:
			out = append(out, cutAtDepth(a, b, depth), b)
		}
	}
	return out
}

func cutAtDepth(a, b Point, depth float64) Point {
	t := (depth - a.Y) / (b.Y - a.Y)
	return Point{a.X + t*(b.X-a.X), depth}
}

// loopAreaMoment returns the shoelace signed area of a loop together
// with the first moment of that area along Y. Inner loops wind
// opposite to the outer one, so voids carry the opposite sign in both.
func loopAreaMoment(loop []Point) (area, moment float64) {
	n := len(loop)
	if n < 3 {
		return 0, 0
	}
	for i := 0; i < n; i++ {
		a, b := loop[i], loop[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		area += cross / 2
		moment += (a.Y + b.Y) * cross / 6
	}
	return area, moment
}

// compressedFromContour clips the contour at depth x below its topmost
// fiber and returns the clipped area with its centroid depth.
func compressedFromContour(pts []Point, x float64) (float64, float64) {
	loops := splitLoops(pts)
	top := math.Inf(1)
	for _, lp := range loops {
		for _, p := range lp {
			top = math.Min(top, p.Y)
		}
	}
	var areaSum, momentSum float64
	for _, lp := range loops {
		a, m := loopAreaMoment(clipLoopAtDepth(lp, top+x))
		areaSum += a
		momentSum += m
	}
	if areaSum == 0 {
		return 0, 0
	}
	return math.Abs(areaSum), momentSum/areaSum - top
}

// contourDepthCentroid returns the centroid depth of the full contour
// area, measured from its topmost fiber, and the total depth extent.
func contourDepthCentroid(pts []Point) (cg, depth float64) {
	loops := splitLoops(pts)
	top, bottom := math.Inf(1), math.Inf(-1)
	var areaSum, momentSum float64
	for _, lp := range loops {
		for _, p := range lp {
			top = math.Min(top, p.Y)
			bottom = math.Max(bottom, p.Y)
		}
		a, m := loopAreaMoment(lp)
		areaSum += a
		momentSum += m
	}
	if areaSum == 0 {
		return 0, 0
	}
	return momentSum/areaSum - top, bottom - top
}
