package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gorcv",
	Short: "Reinforced Concrete Section Verification Tool",
	Long: `gorcv - Go Reinforced Concrete Verifier

A CLI tool for the verification of reinforced concrete sections with
the allowable-stress method of RD 2229/1939, for the assessment of
existing Italian buildings.

This tool helps structural engineers perform:
  - Flexural verification and required steel area
  - Shear verification (stirrups and bent bars)
  - Combined axial force and bending, uniaxial and biaxial
  - Geometric properties of eight parametric section shapes
  - Batch verification from CSV/XLSX schedules with PDF reports

Historical material data follows the Tabella II resistance tables and
the allowable stresses of the 1939 decree.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcv v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Verifier                         ║")
		fmt.Println("  ║   Allowable-stress method, RD 2229/1939                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the verification of existing reinforced")
		fmt.Println("  concrete sections with the allowable-stress method.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Neutral-axis solution and flexural verification")
		fmt.Println("    • Shear verification with stirrups and bent bars")
		fmt.Println("    • Combined axial force and bending (pressoflessione)")
		fmt.Println("    • Batch runs from CSV/XLSX with PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gorcv --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
