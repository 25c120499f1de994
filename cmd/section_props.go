package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/section"
)

var (
	propsShape string
	propsDims  []float64
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Gross geometric properties of a section shape",
	Long: `Compute area, centroid, moments of inertia and section moduli of a
parametric shape.

Examples:
  # 300x500mm rectangle
  gorcv section props --shape rettangolare --dim 300,500

  # T-beam: web 300, height 500, flange 1000x120
  gorcv section props --shape T --dim 300,500,1000,120`,
	Run: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&propsShape, "shape", "s", "rettangolare", "Shape keyword (see 'gorcv section --help')")
	sectionPropsCmd.Flags().Float64SliceVarP(&propsDims, "dim", "d", nil, "Shape dimensions in mm, in parameter order [required]")
	sectionPropsCmd.MarkFlagRequired("dim")
}

func runSectionProps(cmd *cobra.Command, args []string) {
	sh, err := buildShape(propsShape, propsDims)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	props := sh.Properties()
	dims := sh.Dimensions()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PROPRIETÀ GEOMETRICHE DELLA SEZIONE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("FORMA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tipo:\t%s\n", sh.Kind())
	for _, name := range section.ParamNames(propsShape) {
		fmt.Fprintf(w, "  %s:\t%.1f mm\n", name, dims[name])
	}
	w.Flush()
	fmt.Println()

	fmt.Println("PROPRIETÀ:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.0f mm²\n", props.Area)
	fmt.Fprintf(w, "  Baricentro (dal lembo sup.):\t%.2f mm\n", props.CentroidY)
	fmt.Fprintf(w, "  Ix:\t%.4e mm⁴\n", props.Ix)
	fmt.Fprintf(w, "  Iy:\t%.4e mm⁴\n", props.Iy)
	fmt.Fprintf(w, "  W sup:\t%.4e mm³\n", props.Wtop)
	fmt.Fprintf(w, "  W inf:\t%.4e mm³\n", props.Wbottom)
	w.Flush()
	fmt.Println()

	fmt.Printf("  Contorno: %d vertici\n", len(sh.Contour()))
	fmt.Println()
}
