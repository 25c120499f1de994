package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/diagram"
	"github.com/alexiusacademia/gorcv/internal/matlib"
	"github.com/alexiusacademia/gorcv/internal/section"
	"github.com/alexiusacademia/gorcv/internal/verify"
)

var (
	// Geometry
	verifyShape string
	verifyDims  []float64
	verifyCover float64

	// Materials
	verifyLibrary  string
	verifyConcrete string
	verifySteel    string

	// Reinforcement
	verifyBarDia    float64
	verifyBarCount  int
	verifyTopDia    float64
	verifyTopCount  int
	verifyStirrDia  float64
	verifyStirrStep float64
	verifyStirrLegs int
	verifyBentDia   float64
	verifyBentCount int
	verifyBentAngle float64

	// Loads
	verifyMoment  float64
	verifyMomentY float64
	verifyAxial   float64
	verifyShear   float64
	verifyMethod  string

	// Axial options
	verifyBucklingLength float64
	verifyRestraint      float64

	// Output
	verifySketch bool
	verifyExport string
)

var sectionVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Allowable-stress verification of a reinforced section",
	Long: `Verify a reinforced concrete section under bending, shear and axial
force with the allowable-stress method.

Sign conventions: positive moment tensions the bottom fiber, negative
axial force is compression. Moments in kN·m, forces in kN.

Examples:
  # Flexure on a 300x500 beam, 4Ø16 bottom, M = 80 kN·m
  gorcv section verify --shape rettangolare --dim 300,500 \
      --bar-diameter 16 --bar-count 4 --moment 80

  # Shear with stirrups Ø8/150 and 2Ø14 bent bars, Giangreco rule
  gorcv section verify --shape rettangolare --dim 300,500 \
      --bar-diameter 16 --bar-count 4 --shear 90 \
      --stirrup-diameter 8 --stirrup-spacing 150 \
      --bent-diameter 14 --bent-count 2 --method giangreco

  # Column under compression and bending, historical materials
  gorcv section verify --shape rettangolare --dim 300,500 \
      --concrete "C280 (storico)" --steel "FeB32k (storico)" \
      --bar-diameter 16 --bar-count 4 --top-bar-diameter 16 --top-bar-count 2 \
      --axial -500 --moment 30 --buckling-length 3000`,
	Run: runSectionVerify,
}

func init() {
	sectionCmd.AddCommand(sectionVerifyCmd)

	f := sectionVerifyCmd.Flags()
	f.StringVarP(&verifyShape, "shape", "s", "rettangolare", "Shape keyword (see 'gorcv section --help')")
	f.Float64SliceVarP(&verifyDims, "dim", "d", nil, "Shape dimensions in mm, in parameter order [required]")
	f.Float64VarP(&verifyCover, "cover", "c", 30, "Concrete cover to bar axis (mm)")

	f.StringVar(&verifyLibrary, "library", "", "Material library JSON file (defaults built in)")
	f.StringVar(&verifyConcrete, "concrete", "C25 (Rck25)", "Concrete entry name in the library")
	f.StringVar(&verifySteel, "steel", "FeB32k", "Steel entry name in the library")

	f.Float64Var(&verifyBarDia, "bar-diameter", 0, "Bottom bar diameter (mm)")
	f.IntVar(&verifyBarCount, "bar-count", 0, "Bottom bar count")
	f.Float64Var(&verifyTopDia, "top-bar-diameter", 0, "Top bar diameter (mm)")
	f.IntVar(&verifyTopCount, "top-bar-count", 0, "Top bar count")
	f.Float64Var(&verifyStirrDia, "stirrup-diameter", 0, "Stirrup diameter (mm)")
	f.Float64Var(&verifyStirrStep, "stirrup-spacing", 0, "Stirrup spacing (mm)")
	f.IntVar(&verifyStirrLegs, "stirrup-legs", 2, "Stirrup legs")
	f.Float64Var(&verifyBentDia, "bent-diameter", 0, "Bent-up bar diameter (mm)")
	f.IntVar(&verifyBentCount, "bent-count", 0, "Bent-up bar count")
	f.Float64Var(&verifyBentAngle, "bent-angle", 45, "Bent-up bar inclination (degrees)")

	f.Float64VarP(&verifyMoment, "moment", "m", 0, "Bending moment M (kN·m)")
	f.Float64Var(&verifyMomentY, "moment-y", 0, "Bending moment about the vertical axis (kN·m, biaxial)")
	f.Float64VarP(&verifyAxial, "axial", "n", 0, "Axial force N (kN, negative = compression)")
	f.Float64VarP(&verifyShear, "shear", "v", 0, "Shear force V (kN)")
	f.StringVar(&verifyMethod, "method", string(verify.Santarella), "Shear/biaxial combination rule: santarella or giangreco")

	f.Float64Var(&verifyBucklingLength, "buckling-length", 0, "Free buckling length l0 (mm)")
	f.Float64Var(&verifyRestraint, "restraint", 1, "Restraint factor β for slenderness")

	f.BoolVar(&verifySketch, "sketch", false, "Print an ASCII sketch of the section")
	f.StringVarP(&verifyExport, "output", "o", "", "Export section diagram to file (png, svg, pdf)")

	sectionVerifyCmd.MarkFlagRequired("dim")
}

func runSectionVerify(cmd *cobra.Command, args []string) {
	sec, err := verifySection()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     VERIFICA A TENSIONI AMMISSIBILI - RD 2229/1939")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printMaterials(sec)
	printGeometry(sec)
	printReinforcement(sec)

	allOK := true
	var na *section.NeutralAxisResult

	method := verify.Method(verifyMethod)
	if !method.Valid() {
		fmt.Printf("Error: unknown method %q (santarella or giangreco)\n", verifyMethod)
		return
	}

	switch {
	case verifyAxial < 0:
		res, err := runAxial(sec, method)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		allOK = allOK && res.Verified
	case verifyMoment != 0:
		res, err := runFlexure(sec)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		na = &res.NeutralAxis
		allOK = allOK && res.Verified
	}

	if verifyShear != 0 {
		ok, err := runShear(sec, method)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		allOK = allOK && ok
	}

	verdict := "VERIFICATA"
	if !allOK {
		verdict = "NON VERIFICATA"
	}
	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  SEZIONE %s\n", verdict)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	if na == nil && (verifySketch || verifyExport != "") {
		if solved, err := sec.NeutralAxis(math.Abs(verifyMoment), verifyAxial); err == nil {
			na = solved
		}
	}
	if na != nil {
		if verifySketch {
			fmt.Println(diagram.Sketch(sec, *na))
		}
		if verifyExport != "" {
			if err := diagram.ExportSection(sec, *na, verifyExport); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
				return
			}
			fmt.Printf("  Diagramma esportato: %s\n\n", verifyExport)
		}
	}
}

// verifySection assembles the section from the geometry, material and
// reinforcement flags.
func verifySection() (*section.Section, error) {
	sh, err := buildShape(verifyShape, verifyDims)
	if err != nil {
		return nil, err
	}

	lib, err := matlib.Load(verifyLibrary)
	if err != nil {
		return nil, fmt.Errorf("loading material library: %w", err)
	}
	concrete, err := lib.Concrete(verifyConcrete)
	if err != nil {
		return nil, err
	}
	steel, err := lib.Steel(verifySteel)
	if err != nil {
		return nil, err
	}

	sec, err := section.New(sh, concrete, steel, verifyCover)
	if err != nil {
		return nil, err
	}
	if verifyBarCount > 0 && verifyBarDia > 0 {
		sec.AddBottomBar(verifyBarDia, verifyBarCount)
	}
	if verifyTopCount > 0 && verifyTopDia > 0 {
		sec.AddTopBar(verifyTopDia, verifyTopCount)
	}
	if verifyStirrDia > 0 && verifyStirrStep > 0 {
		sec.SetStirrup(verifyStirrDia, verifyStirrStep, verifyStirrLegs)
	}
	if verifyBentDia > 0 && verifyBentCount > 0 {
		sec.SetBentBars(verifyBentDia, verifyBentCount, verifyBentAngle)
	}
	return sec, nil
}

func printMaterials(sec *section.Section) {
	fmt.Println("MATERIALI:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Calcestruzzo:\t%s\n", sec.Concrete.Name)
	fmt.Fprintf(w, "  σc,amm:\t%.2f MPa\n", sec.Concrete.SigmaAllowable)
	fmt.Fprintf(w, "  τc0:\t%.3f MPa\n", sec.Concrete.TauAllowable)
	fmt.Fprintf(w, "  Ec:\t%.0f MPa\n", sec.Concrete.Modulus)
	fmt.Fprintf(w, "  Acciaio:\t%s\n", sec.Steel.Name)
	fmt.Fprintf(w, "  σs,amm:\t%.1f MPa\n", sec.Steel.SigmaAllowable)
	fmt.Fprintf(w, "  Es:\t%.0f MPa\n", sec.Steel.Modulus)
	fmt.Fprintf(w, "  n = Es/Ec:\t%.3f\n", sec.Homogenization())
	w.Flush()
	fmt.Println()
}

func printGeometry(sec *section.Section) {
	props := sec.Properties()
	fmt.Println("GEOMETRIA SEZIONE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tipo:\t%s\n", sec.Kind())
	fmt.Fprintf(w, "  Area lorda:\t%.0f mm²\n", props.Area)
	fmt.Fprintf(w, "  Baricentro (dal lembo sup.):\t%.2f mm\n", props.CentroidY)
	fmt.Fprintf(w, "  Altezza utile d:\t%.1f mm\n", sec.EffectiveDepth())
	w.Flush()
	fmt.Println()
}

func printReinforcement(sec *section.Section) {
	fmt.Println("ARMATURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As (tese):\t%.1f mm²\n", sec.As())
	if asp := sec.AsPrime(); asp > 0 {
		fmt.Fprintf(w, "  A's (compresse):\t%.1f mm²\n", asp)
	}
	if sec.Stirrups != nil {
		fmt.Fprintf(w, "  Staffe:\t%d br. Ø%.0f / %.0f mm\n",
			sec.Stirrups.Legs, sec.Stirrups.Diameter, sec.Stirrups.Spacing)
	}
	if sec.Bent != nil {
		fmt.Fprintf(w, "  Ferri piegati:\t%d Ø%.0f a %.0f°\n",
			sec.Bent.Count, sec.Bent.Diameter, sec.Bent.Inclination)
	}
	if ratio := sec.SteelRatio(); ratio > 0 {
		fmt.Fprintf(w, "  Percentuale geometrica:\t%.3f %%\n", ratio)
	}
	w.Flush()
	fmt.Println()
}

func runFlexure(sec *section.Section) (*verify.FlexureResult, error) {
	res, err := verify.Flexure(sec, verifyMoment)
	if err != nil {
		return nil, err
	}

	fmt.Println("VERIFICA A FLESSIONE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Asse neutro x:\t%.2f mm\n", res.NeutralAxis.X)
	fmt.Fprintf(w, "  Rottura lato:\t%s\n", res.NeutralAxis.Mode)
	fmt.Fprintf(w, "  Momento resistente Mr:\t%.2f kN·m\n", res.MomentResistance)
	fmt.Fprintf(w, "  Momento agente M:\t%.2f kN·m\n", res.MomentApplied)
	fmt.Fprintf(w, "  σc:\t%.2f MPa  (amm. %.2f)\n", res.StressConcrete, sec.Concrete.SigmaAllowable)
	fmt.Fprintf(w, "  σs:\t%.1f MPa  (amm. %.1f)\n", res.StressSteel, sec.Steel.SigmaAllowable)
	fmt.Fprintf(w, "  Sfruttamento cls:\t%.3f\n", res.UtilizationConcrete)
	fmt.Fprintf(w, "  Sfruttamento acciaio:\t%.3f\n", res.UtilizationSteel)
	fmt.Fprintf(w, "  Coefficiente di sicurezza:\t%.3f\n", res.SafetyFactor)

	fiber := verify.FiberBottom
	if verifyMoment < 0 {
		fiber = verify.FiberTop
	}
	if req := verify.RequiredSteelArea(sec, verifyMoment, verifyAxial, fiber); req > 0 {
		fmt.Fprintf(w, "  Area minima richiesta:\t%.0f mm²\n", req)
	}
	w.Flush()
	fmt.Println()
	return res, nil
}

func runShear(sec *section.Section, method verify.Method) (bool, error) {
	res, err := verify.Shear(sec, verifyShear, method, true)
	if err != nil {
		return false, err
	}

	fmt.Println("VERIFICA A TAGLIO:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Regola:\t%s\n", res.Method)
	fmt.Fprintf(w, "  τ media:\t%.3f MPa  (amm. %.3f)\n", res.TauMean, sec.Concrete.TauAllowable)
	fmt.Fprintf(w, "  Vc (calcestruzzo):\t%.2f kN\n", res.ConcreteShare)
	if res.StirrupShare > 0 {
		fmt.Fprintf(w, "  Vs (staffe):\t%.2f kN\n", res.StirrupShare)
	}
	if res.BentBarShare > 0 {
		fmt.Fprintf(w, "  Vf (ferri piegati):\t%.2f kN\n", res.BentBarShare)
	}
	fmt.Fprintf(w, "  Taglio resistente Vr:\t%.2f kN\n", res.Resistance)
	fmt.Fprintf(w, "  Taglio agente V:\t%.2f kN\n", res.ShearApplied)
	fmt.Fprintf(w, "  Sfruttamento:\t%.3f\n", res.Utilization)

	if !res.Verified && verifyStirrDia > 0 {
		s := verify.StirrupSpacing(sec, verifyShear, verifyStirrDia, verifyStirrLegs, 1.0)
		if !math.IsInf(s, 1) {
			fmt.Fprintf(w, "  Passo staffe richiesto:\t%.0f mm\n", s)
		}
	}
	w.Flush()
	fmt.Println()
	return res.Verified, nil
}

func runAxial(sec *section.Section, method verify.Method) (*verify.AxialResult, error) {
	opts := &verify.AxialOptions{
		BucklingLength:  verifyBucklingLength,
		RestraintFactor: verifyRestraint,
	}

	var res *verify.AxialResult
	var err error
	if verifyMomentY != 0 {
		res, err = verify.BiaxialBending(sec, verifyAxial, verifyMoment, verifyMomentY, method, opts)
	} else {
		res, err = verify.AxialBending(sec, verifyAxial, verifyMoment, opts)
	}
	if err != nil {
		return nil, err
	}

	title := "VERIFICA A PRESSOFLESSIONE:"
	if res.Biaxial {
		title = "VERIFICA A PRESSOFLESSIONE DEVIATA:"
	}
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Eccentricità totale:\t%.1f mm\n", res.Eccentricity)
	fmt.Fprintf(w, "  Asse neutro x:\t%.2f mm\n", res.NeutralAxis)
	fmt.Fprintf(w, "  Sforzo normale resistente Nr:\t%.2f kN\n", res.LoadResistance)
	fmt.Fprintf(w, "  Momento resistente Mr,x:\t%.2f kN·m\n", res.MomentResistanceX)
	if res.Biaxial {
		fmt.Fprintf(w, "  Momento resistente Mr,y:\t%.2f kN·m\n", res.MomentResistanceY)
	}
	fmt.Fprintf(w, "  σc:\t%.2f MPa\n", res.StressConcrete)
	fmt.Fprintf(w, "  σs (tese):\t%.1f MPa\n", res.StressSteelTension)
	if res.StressSteelCompression > 0 {
		fmt.Fprintf(w, "  σ's (compresse):\t%.1f MPa\n", res.StressSteelCompression)
	}
	fmt.Fprintf(w, "  Sfruttamento:\t%.3f\n", res.Utilization)
	w.Flush()
	fmt.Println()
	return res, nil
}
