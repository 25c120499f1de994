package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorcv/internal/section"
)

const (
	sketchRows = 20
	sketchCols = 36
)

// Sketch draws a terminal rendition of the section: compressed zone
// shaded, reinforcement marked, neutral axis called out. The contour
// drives the fill so every shape variant renders, hollow ones included.
func Sketch(sec *section.Section, na section.NeutralAxisResult) string {
	var sb strings.Builder

	loops := contourLoops(sec.Contour())
	if len(loops) == 0 {
		return ""
	}
	minX, maxX := contourBounds(loops)
	h := sec.Dimensions()["h"]
	if h <= 0 || maxX <= minX {
		return ""
	}

	barRows := map[int]bool{}
	for _, group := range append(append([]section.Bar{}, sec.BottomBars...), sec.TopBars...) {
		if group.Count > 0 {
			barRows[rowForDepth(group.Y, h)] = true
		}
	}
	naRow := rowForDepth(na.X, h)

	sb.WriteString("\n")
	for i := 0; i < sketchRows; i++ {
		depth := (float64(i) + 0.5) * h / float64(sketchRows)
		xs := crossingsAtDepth(loops, depth)

		row := make([]rune, sketchCols)
		for j := range row {
			mid := minX + (float64(j)+0.5)*(maxX-minX)/float64(sketchCols)
			if insideSection(xs, mid) {
				if depth <= na.X {
					row[j] = '░'
				} else {
					row[j] = ' '
				}
			} else {
				row[j] = ' '
			}
		}
		// Edge columns.
		for _, x := range xs {
			j := int((x - minX) / (maxX - minX) * float64(sketchCols))
			if j < 0 {
				j = 0
			}
			if j >= sketchCols {
				j = sketchCols - 1
			}
			row[j] = '│'
		}
		if barRows[i] {
			markBars(row, xs, minX, maxX)
		}

		sb.WriteString("  ")
		sb.WriteString(string(row))
		if i == naRow {
			sb.WriteString(fmt.Sprintf("  ◄─ asse neutro x = %.1f mm", na.X))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	dims := sec.Dimensions()
	sb.WriteString(fmt.Sprintf("  sezione %s  b=%.0f h=%.0f mm\n", sec.Kind(), dims["b"], dims["h"]))
	if as := sec.As(); as > 0 {
		sb.WriteString(fmt.Sprintf("  As = %.0f mm²  (d = %.0f mm)\n", as, sec.EffectiveDepth()))
	}
	if asp := sec.AsPrime(); asp > 0 {
		sb.WriteString(fmt.Sprintf("  A's = %.0f mm²\n", asp))
	}
	if na.Mode != "" {
		sb.WriteString(fmt.Sprintf("  rottura lato %s\n", na.Mode))
	}
	if !na.Converged {
		sb.WriteString("  equilibrio non convergente\n")
	}
	return sb.String()
}

func rowForDepth(depth, h float64) int {
	row := int(depth / h * sketchRows)
	if row < 0 {
		row = 0
	}
	if row >= sketchRows {
		row = sketchRows - 1
	}
	return row
}

// insideSection applies the even-odd rule against the sorted edge
// crossings of the current row.
func insideSection(xs []float64, x float64) bool {
	count := 0
	for _, c := range xs {
		if c < x {
			count++
		}
	}
	return count%2 == 1
}

// markBars drops three glyphs across the web at the bar row.
func markBars(row []rune, xs []float64, minX, maxX float64) {
	lo, hi := minX, maxX
	if len(xs) >= 2 {
		lo, hi = xs[0], xs[len(xs)-1]
	}
	for _, x := range spreadAcross(3, lo, hi) {
		j := int((x - minX) / (maxX - minX) * float64(sketchCols))
		if j >= 0 && j < sketchCols {
			row[j] = '●'
		}
	}
}
