package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/batch"
	"github.com/alexiusacademia/gorcv/internal/matlib"
	"github.com/alexiusacademia/gorcv/internal/report"
)

var (
	batchInput   string
	batchOutput  string
	batchReport  string
	batchLibrary string
	batchProject string
	batchAuthor  string
	batchTitle   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify a schedule of sections from a CSV or XLSX file",
	Long: `Run the flexural verification over every element of a CSV or XLSX
schedule and write the results as CSV, optionally with a PDF report.

The input columns are:
  id, type, p1..p6, material, As, As_prime, M_kNm, N_kN

where type is a shape keyword, p1..p6 its dimensions in order, material
a library entry name, As/As_prime the steel areas in mm² and M/N the
acting moment and axial force. Italian column aliases (tipo, materiale,
momento, ...) are accepted.

Examples:
  gorcv batch --input travi.csv --output risultati.csv
  gorcv batch --input travi.xlsx --report relazione.pdf --project "Palazzina A"`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input CSV or XLSX file [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Results CSV file (default stdout)")
	batchCmd.Flags().StringVar(&batchReport, "report", "", "PDF report file")
	batchCmd.Flags().StringVar(&batchLibrary, "library", "", "Material library JSON file")
	batchCmd.Flags().StringVar(&batchProject, "project", "", "Project name for the report")
	batchCmd.Flags().StringVar(&batchAuthor, "author", "", "Author name for the report")
	batchCmd.Flags().StringVar(&batchTitle, "title", "Verifica sezioni c.a.", "Report title")
	batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) {
	elements, err := readElements(batchInput)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", batchInput, err)
		return
	}

	lib, err := matlib.Load(batchLibrary)
	if err != nil {
		fmt.Printf("Error loading material library: %v\n", err)
		return
	}

	results := batch.Run(lib, elements)

	if err := writeResults(batchOutput, results); err != nil {
		fmt.Printf("Error writing results: %v\n", err)
		return
	}

	if batchReport != "" {
		f, err := os.Create(batchReport)
		if err != nil {
			fmt.Printf("Error creating report: %v\n", err)
			return
		}
		defer f.Close()
		input := report.Input{
			Project: batchProject,
			Author:  batchAuthor,
			Title:   batchTitle,
		}
		if err := report.Generate(f, input, results); err != nil {
			fmt.Printf("Error generating report: %v\n", err)
			return
		}
		fmt.Printf("Relazione PDF: %s\n", batchReport)
	}

	var verified, failed, errored int
	for _, r := range results {
		switch {
		case r.Error != "":
			errored++
		case r.Verified:
			verified++
		default:
			failed++
		}
	}
	fmt.Printf("Elementi: %d  verificati: %d  non verificati: %d  errori: %d\n",
		len(results), verified, failed, errored)
}

func readElements(path string) ([]batch.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return batch.ReadXLSX(f)
	case ".csv":
		return batch.ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported input format %q (csv or xlsx)", filepath.Ext(path))
	}
}

func writeResults(path string, results []batch.Result) error {
	if path == "" {
		return batch.WriteResultsCSV(os.Stdout, results)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return batch.WriteResultsCSV(f, results)
}
