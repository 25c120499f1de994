package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gorcv/internal/section"
)

// ExportSection renders the section outline, the reinforcement and the
// neutral axis to an image file. The format follows the file extension
// (.png, .svg, .pdf); anything else falls back to PNG.
func ExportSection(sec *section.Section, na section.NeutralAxisResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Sezione verificata"
	p.X.Label.Text = "Larghezza (mm)"
	p.Y.Label.Text = "Profondità dal lembo superiore (mm)"

	loops := contourLoops(sec.Contour())
	if len(loops) == 0 {
		return fmt.Errorf("diagram: empty contour")
	}
	minX, maxX := contourBounds(loops)
	h := sec.Dimensions()["h"]

	// Depth grows downward, so the vertical axis is inverted.
	p.Y.Min = h + 20
	p.Y.Max = -20

	for _, loop := range loops {
		outline := make(plotter.XYs, len(loop))
		for i, pt := range loop {
			outline[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(outline)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	// Shade the compressed zone by clipping the outer loop at the
	// neutral-axis depth.
	if na.X > 0 {
		zone := clipLoopAtDepth(loops[0], na.X)
		if len(zone) >= 3 {
			poly, err := plotter.NewPolygon(zone)
			if err == nil {
				poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
				poly.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
				p.Add(poly)
			}
		}
	}

	// Neutral axis, dashed.
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - 20, Y: na.X},
		{X: maxX + 20, Y: na.X},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	if err := addBarGlyphs(p, loops, sec.BottomBars, minX, maxX, 6); err != nil {
		return err
	}
	if err := addBarGlyphs(p, loops, sec.TopBars, minX, maxX, 5); err != nil {
		return err
	}

	labels := []struct {
		x, y float64
		text string
	}{
		{maxX + 25, na.X, fmt.Sprintf("x=%.1fmm", na.X)},
	}
	if as := sec.As(); as > 0 {
		d := sec.EffectiveDepth()
		labels = append(labels, struct {
			x, y float64
			text string
		}{maxX + 25, d, fmt.Sprintf("As=%.0fmm²", as)})
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 6 * vg.Inch
	height := 8 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// addBarGlyphs scatters one glyph per bar of each group, spread across
// the section width at the group's depth.
func addBarGlyphs(p *plot.Plot, loops [][]section.Point, bars []section.Bar, minX, maxX, radius float64) error {
	for _, group := range bars {
		if group.Count <= 0 {
			continue
		}
		lo, hi := widthAtDepth(loops, group.Y, minX, maxX)
		var pts plotter.XYs
		if group.X != 0 {
			pts = append(pts, plotter.XY{X: group.X, Y: group.Y})
		} else {
			for _, x := range spreadAcross(group.Count, lo, hi) {
				pts = append(pts, plotter.XY{X: x, Y: group.Y})
			}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(radius)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}
	return nil
}

// spreadAcross places n points evenly inside [lo, hi] with a 15% inset
// on each side.
func spreadAcross(n int, lo, hi float64) []float64 {
	inset := (hi - lo) * 0.15
	lo += inset
	hi -= inset
	if n == 1 {
		return []float64{(lo + hi) / 2}
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	return xs
}

// contourLoops splits a contour into its closed loops. Hollow shapes
// return the outer loop followed by the inner one.
func contourLoops(pts []section.Point) [][]section.Point {
	var loops [][]section.Point
	start := 0
	for i := 1; i < len(pts); i++ {
		if samePoint(pts[i], pts[start]) {
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

// Circle contours close only to rounding error.
func samePoint(a, b section.Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func contourBounds(loops [][]section.Point) (minX, maxX float64) {
	minX, maxX = loops[0][0].X, loops[0][0].X
	for _, loop := range loops {
		for _, p := range loop {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
		}
	}
	return minX, maxX
}

// clipLoopAtDepth keeps the part of a closed loop above the given depth
// and inserts the intersection points on the clip line.
func clipLoopAtDepth(loop []section.Point, depth float64) plotter.XYs {
	if len(loop) < 3 || depth <= 0 {
		return nil
	}
	var result plotter.XYs
	n := len(loop) - 1 // last point repeats the first
	for i := 0; i < n; i++ {
		curr, next := loop[i], loop[i+1]
		currAbove := curr.Y <= depth
		nextAbove := next.Y <= depth

		if currAbove {
			result = append(result, plotter.XY{X: curr.X, Y: curr.Y})
		}
		if currAbove != nextAbove {
			t := (depth - curr.Y) / (next.Y - curr.Y)
			result = append(result, plotter.XY{X: curr.X + t*(next.X-curr.X), Y: depth})
		}
	}
	return result
}

// crossingsAtDepth returns the sorted X coordinates where the contour
// edges cross a horizontal line at the given depth.
func crossingsAtDepth(loops [][]section.Point, depth float64) []float64 {
	var xs []float64
	for _, loop := range loops {
		n := len(loop) - 1
		for i := 0; i < n; i++ {
			curr, next := loop[i], loop[i+1]
			if (curr.Y <= depth && next.Y > depth) || (next.Y <= depth && curr.Y > depth) {
				t := (depth - curr.Y) / (next.Y - curr.Y)
				xs = append(xs, curr.X+t*(next.X-curr.X))
			}
		}
	}
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
	return xs
}

// widthAtDepth finds the horizontal extent of the section at a depth,
// falling back to the overall bounds when the line misses every edge.
func widthAtDepth(loops [][]section.Point, depth, defaultMin, defaultMax float64) (float64, float64) {
	xs := crossingsAtDepth(loops, depth)
	if len(xs) < 2 {
		return defaultMin, defaultMax
	}
	return xs[0], xs[len(xs)-1]
}
