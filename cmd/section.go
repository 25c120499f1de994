package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/section"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section geometry and verification",
	Long: `Compute geometric properties and run allowable-stress checks on a
single reinforced concrete section.

The shape is selected with --shape and dimensioned with --dim, one value
per parameter of the variant, in order:

  rettangolare    b, h
  T               bw, h, bf, tf
  I               bw, h, bf_sup, tf_sup, bf_inf, tf_inf
  L               b1, t1, h, b2, t2
  U               b, h, tf, tw
  rett_cava       b, h, tw, ts, ti
  circolare       D
  circolare_cava  De, Di

All dimensions in mm.

Subcommands:
  props   - Gross geometric properties of a shape
  verify  - Flexure / shear / axial verification of a reinforced section`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}

// buildShape turns the --shape/--dim flags into a validated shape.
func buildShape(kind string, dims []float64) (section.Shape, error) {
	names := section.ParamNames(kind)
	if names == nil {
		return nil, fmt.Errorf("unknown shape %q (available: %s)", kind, strings.Join(section.Kinds(), ", "))
	}
	if len(dims) != len(names) {
		return nil, fmt.Errorf("shape %q wants %d dimensions (%s), got %d",
			kind, len(names), strings.Join(names, ", "), len(dims))
	}
	return section.NewShape(kind, dims...)
}
