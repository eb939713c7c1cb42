package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is the grid accessor used by the extractors.
// Sheet order is significant: the first sheet holds the primary table.
type Workbook interface {
	// SheetNames returns the sheet names in stored order.
	SheetNames() []string
	// Grid loads the named sheet.
	Grid(sheetName string) (*Grid, error)
	// Close releases the underlying file.
	Close() error
}

// ExcelizeWorkbook reads sheets through excelize.
type ExcelizeWorkbook struct {
	f *excelize.File
}

// OpenExcelize opens a workbook file with excelize.
func OpenExcelize(path string) (*ExcelizeWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelizeWorkbook{f: f}, nil
}

// NewExcelizeWorkbook wraps an already opened excelize file.
func NewExcelizeWorkbook(f *excelize.File) *ExcelizeWorkbook {
	return &ExcelizeWorkbook{f: f}
}

// SheetNames implements Workbook.
func (w *ExcelizeWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Grid implements Workbook.
func (w *ExcelizeWorkbook) Grid(sheetName string) (*Grid, error) {
	return ReadGrid(w.f, sheetName)
}

// Close implements Workbook.
func (w *ExcelizeWorkbook) Close() error {
	return w.f.Close()
}

// ReadGrid reads the formatted cell text of a sheet into a Grid, along with
// the stored type of every non-empty cell.
// Empty rows inside the used range are kept so row indexes match the sheet.
func ReadGrid(f *excelize.File, sheetName string) (*Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	kinds := make([][]CellKind, len(rows))
	for r, row := range rows {
		kinds[r] = make([]CellKind, len(row))
		for c, text := range row {
			if text == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheetName, cell)
			if err != nil {
				return nil, err
			}
			kinds[r][c] = excelizeKind(typ)
		}
	}
	return NewTypedGrid(sheetName, rows, kinds), nil
}

// excelizeKind maps an excelize cell type. Cells without a type attribute
// hold numbers.
func excelizeKind(t excelize.CellType) CellKind {
	switch t {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return KindNumber
	default:
		return KindText
	}
}

// scalar converts raw cell text to an output value.
// Blank text becomes nil. Numeric cells go through parseValue, text cells
// are returned as is, and untyped cells go through inferValue.
func scalar(s string, kind CellKind) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	switch kind {
	case KindNumber:
		return parseValue(s)
	case KindText:
		return s
	default:
		return inferValue(s)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// NaN and Inf have no JSON form, keep them as text.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}

// inferValue is parseValue restricted to canonical number text: the result
// must format back to s. "007", "1e3" and integers past int64 stay strings.
func inferValue(s string) interface{} {
	switch v := parseValue(s).(type) {
	case int64:
		if strconv.FormatInt(v, 10) == s {
			return v
		}
	case float64:
		if strconv.FormatFloat(v, 'f', -1, 64) == s {
			return v
		}
	}
	return s
}
