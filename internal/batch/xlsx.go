package batch

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses an element workbook: first sheet, first row as
// header, same schema and aliases as the CSV reader.
func ReadXLSX(r io.Reader) ([]Element, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("element workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("element workbook: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("element workbook: empty sheet")
	}
	return elementsFromRows(rows[0], rows[1:])
}
