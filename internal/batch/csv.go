package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Headers is the canonical column order of element files.
var Headers = []string{
	"id", "type", "p1", "p2", "p3", "p4", "p5", "p6",
	"material", "As", "As_prime", "M_kNm", "N_kN",
}

// headerAliases accepts the spellings seen in the field: Italian and
// English names, unit-suffixed and bare.
var headerAliases = map[string][]string{
	"id":       {"id", "elemento", "name"},
	"type":     {"type", "tipo", "tipologia"},
	"material": {"material", "materiale", "mat"},
	"As":       {"as", "as_inf", "armatura_inf"},
	"As_prime": {"as_prime", "as_sup", "armatura_sup"},
	"M_kNm":    {"m_knm", "m", "momento", "momento_flettente"},
	"N_kN":     {"n_kn", "n", "sforzo_normale", "carico"},
}

// resolveHeader maps a raw header cell to its canonical name, or "".
func resolveHeader(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	for canonical, aliases := range headerAliases {
		for _, a := range aliases {
			if key == a {
				return canonical
			}
		}
	}
	// p1..p6 have no aliases.
	if len(key) == 2 && key[0] == 'p' && key[1] >= '1' && key[1] <= '6' {
		return key
	}
	return ""
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	// Element files from spreadsheet exports use the decimal comma.
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// elementsFromRows builds elements from a header row plus data rows,
// shared by the CSV and XLSX readers.
func elementsFromRows(header []string, rows [][]string) ([]Element, error) {
	columns := make(map[string]int, len(header))
	for i, raw := range header {
		if name := resolveHeader(raw); name != "" {
			columns[name] = i
		}
	}
	if _, ok := columns["type"]; !ok {
		return nil, fmt.Errorf("element file: no recognizable 'type' column")
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var elements []Element
	for n, row := range rows {
		line := n + 2 // 1-based, after the header

		e := Element{
			ID:       strings.TrimSpace(cell(row, "id")),
			Type:     strings.TrimSpace(cell(row, "type")),
			Material: strings.TrimSpace(cell(row, "material")),
		}
		if e.Type == "" {
			continue
		}
		for i := 0; i < 6; i++ {
			v, err := parseFloat(cell(row, fmt.Sprintf("p%d", i+1)))
			if err != nil {
				return nil, fmt.Errorf("element file line %d: p%d: %w", line, i+1, err)
			}
			e.Params[i] = v
		}
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{"As", &e.As}, {"As_prime", &e.AsPrime}, {"M_kNm", &e.M}, {"N_kN", &e.N},
		} {
			v, err := parseFloat(cell(row, f.name))
			if err != nil {
				return nil, fmt.Errorf("element file line %d: %s: %w", line, f.name, err)
			}
			*f.dst = v
		}
		elements = append(elements, e)
	}
	return elements, nil
}

// ReadCSV parses an element file. The header row is required; columns
// may appear in any order and under any accepted alias, unknown columns
// are ignored.
func ReadCSV(r io.Reader) ([]Element, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("element file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("element file: empty")
	}
	return elementsFromRows(records[0], records[1:])
}

// WriteCSV writes elements under the canonical headers.
func WriteCSV(w io.Writer, elements []Element) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, e := range elements {
		row := []string{
			e.ID, e.Type,
			formatFloat(e.Params[0]), formatFloat(e.Params[1]), formatFloat(e.Params[2]),
			formatFloat(e.Params[3]), formatFloat(e.Params[4]), formatFloat(e.Params[5]),
			e.Material,
			formatFloat(e.As), formatFloat(e.AsPrime),
			formatFloat(e.M), formatFloat(e.N),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResultsCSV writes a verification run as CSV.
func WriteResultsCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "kind", "area_mm2", "centroid_mm", "neutral_axis_mm",
		"converged", "mode", "Mr_kNm", "utilization", "verified", "error",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.ID, r.Kind,
			formatFloat(r.Area), formatFloat(r.CentroidY), formatFloat(r.NeutralAxis),
			strconv.FormatBool(r.Converged), r.Mode,
			formatFloat(r.MomentResistance), formatFloat(r.Utilization),
			strconv.FormatBool(r.Verified), r.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
