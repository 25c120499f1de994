package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/matlib"
	"github.com/alexiusacademia/gorcv/internal/rd2229"
)

var (
	materialsLibrary string
	materialsTables  bool
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List material library entries and historical tables",
	Long: `List the entries of the material library (built-in defaults merged
with an optional user JSON file) and, with --tables, the historical
resistance tables of RD 2229/1939.

Examples:
  gorcv materials
  gorcv materials --library materiali.json
  gorcv materials --tables`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().StringVar(&materialsLibrary, "library", "", "Material library JSON file")
	materialsCmd.Flags().BoolVar(&materialsTables, "tables", false, "Print the Tabella II resistance tables")
}

func runMaterials(cmd *cobra.Command, args []string) {
	lib, err := matlib.Load(materialsLibrary)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("LIBRERIA MATERIALI:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nome\tTipo\tValori\n")
	fmt.Fprintf(w, "  ────\t────\t──────\n")
	for _, name := range lib.Names() {
		entry := lib[name]
		switch {
		case entry.IsConcrete():
			c, err := entry.ToConcrete()
			if err != nil {
				fmt.Fprintf(w, "  %s\tcls\terrore: %v\n", name, err)
				continue
			}
			fmt.Fprintf(w, "  %s\tcls\tσc,amm %.2f MPa, τc0 %.3f MPa, Ec %.0f MPa\n",
				name, c.SigmaAllowable, c.TauAllowable, c.Modulus)
		case entry.IsSteel():
			s, err := entry.ToSteel()
			if err != nil {
				fmt.Fprintf(w, "  %s\tacciaio\terrore: %v\n", name, err)
				continue
			}
			fmt.Fprintf(w, "  %s\tacciaio\tσs,amm %.1f MPa, Es %.0f MPa\n",
				name, s.SigmaAllowable, s.Modulus)
		}
	}
	w.Flush()
	fmt.Println()

	if !materialsTables {
		return
	}

	fmt.Println("TABELLA II - RESISTENZA A 28 GIORNI (kg/cm²):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	cements := []rd2229.CementType{
		rd2229.CementNormal, rd2229.CementHighResistance, rd2229.CementAluminous,
	}
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cemento\ta/c\tσc,28\tσc,amm\tτc0\n")
	fmt.Fprintf(w, "  ───────\t───\t─────\t──────\t───\n")
	for _, cement := range cements {
		ratios, err := rd2229.TabulatedRatios(cement)
		if err != nil {
			continue
		}
		for _, ratio := range ratios {
			res, err := rd2229.ConcreteResistance(cement, ratio)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "  %s\t%.2f\t%.0f\t%.0f\t%.0f\n",
				cement, ratio, res,
				rd2229.AllowableConcreteBending(cement),
				rd2229.AllowableConcreteShear(cement))
		}
	}
	w.Flush()
	fmt.Println()

	fmt.Println("GRADI STORICI:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nome\tσamm (kg/cm²)\tNote\n")
	fmt.Fprintf(w, "  ────\t─────────────\t────\n")
	for _, g := range rd2229.ConcreteGrades {
		fmt.Fprintf(w, "  %s\t%.0f\t%s\n", g.Name, g.SigmaAllowable, g.Notes)
	}
	for _, g := range rd2229.SteelGrades {
		fmt.Fprintf(w, "  %s\t%.0f\t%s\n", g.Name, g.SigmaAllowable, g.Notes)
	}
	w.Flush()
	fmt.Println()
}
