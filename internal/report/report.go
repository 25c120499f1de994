// Package report renders a batch verification run as a PDF document.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gorcv/internal/batch"
)

// Input carries the document header fields.
type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// columns of the per-element result table, widths in mm.
var columns = []struct {
	title string
	width float64
}{
	{"ID", 22},
	{"Tipo", 26},
	{"Area [mm2]", 26},
	{"x [mm]", 20},
	{"Mr [kNm]", 22},
	{"Sfrutt.", 18},
	{"Esito", 24},
	{"Note", 32},
}

// Generate writes the PDF for a verification run.
func Generate(w io.Writer, input Input, results []batch.Result) error {
	if input.Title == "" {
		input.Title = "Verifica sezioni c.a. - RD 2229/1939"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Progetto: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Autore: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Data: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if input.Notes != "" {
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range results {
		verdict := "VERIFICATA"
		if !r.Verified {
			verdict = "NON VERIFICATA"
		}
		note := r.Error
		if note == "" && !r.Converged {
			note = "non convergente"
		}
		if r.Error != "" {
			verdict = "ERRORE"
		}

		cells := []string{
			r.ID,
			r.Kind,
			fmt.Sprintf("%.0f", r.Area),
			fmt.Sprintf("%.1f", r.NeutralAxis),
			fmt.Sprintf("%.2f", r.MomentResistance),
			fmt.Sprintf("%.2f", r.Utilization),
			verdict,
			note,
		}
		for i, c := range columns {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4,
		"Verifica alle tensioni ammissibili secondo RD 2229/1939. "+
			"Momenti resistenti lato calcestruzzo/acciaio secondo Santarella; "+
			"sezioni non rettangolari risolte per equilibrio iterativo.",
		"", "L", false)

	return pdf.Output(w)
}
