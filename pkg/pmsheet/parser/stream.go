package parser

import (
	"fmt"

	"github.com/thedatashed/xlsxreader"
)

// StreamWorkbook reads sheets with xlsxreader, which streams rows instead of
// loading the whole workbook model. It only supports the cell values the
// extractors need.
type StreamWorkbook struct {
	xl *xlsxreader.XlsxFileCloser
}

// OpenStream opens a workbook file with xlsxreader.
func OpenStream(path string) (*StreamWorkbook, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &StreamWorkbook{xl: xl}, nil
}

// SheetNames implements Workbook.
func (w *StreamWorkbook) SheetNames() []string {
	return w.xl.Sheets
}

// Grid implements Workbook. Sparse rows and cells are expanded so that
// indexes line up with the sheet.
func (w *StreamWorkbook) Grid(sheetName string) (*Grid, error) {
	var rows [][]string
	var kinds [][]CellKind
	var readErr error
	for row := range w.xl.ReadRows(sheetName) {
		if row.Error != nil {
			// keep draining so the reader goroutine can finish
			if readErr == nil {
				readErr = row.Error
			}
			continue
		}
		idx := row.Index - 1
		if idx < 0 {
			continue
		}
		for len(rows) <= idx {
			rows = append(rows, nil)
			kinds = append(kinds, nil)
		}
		var values []string
		var types []CellKind
		for _, cell := range row.Cells {
			col := cell.ColumnIndex()
			for len(values) <= col {
				values = append(values, "")
				types = append(types, KindUnknown)
			}
			values[col] = cell.Value
			types[col] = streamKind(cell.Type)
		}
		rows[idx] = values
		kinds[idx] = types
	}
	if readErr != nil {
		return nil, fmt.Errorf("read rows of %q: %w", sheetName, readErr)
	}
	return NewTypedGrid(sheetName, rows, kinds), nil
}

func streamKind(t xlsxreader.CellType) CellKind {
	if t == xlsxreader.TypeNumerical {
		return KindNumber
	}
	return KindText
}

// Close implements Workbook.
func (w *StreamWorkbook) Close() error {
	return w.xl.Close()
}
