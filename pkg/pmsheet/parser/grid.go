package parser

import "strings"

// Grid is a read-only view of one sheet as raw cell text.
// Rows and columns are zero-based. Rows may have different lengths;
// cells past the end of a row are treated as blank.
type Grid struct {
	// Name is the sheet name.
	Name string

	rows  [][]string
	kinds [][]CellKind
	width int
}

// CellKind is the stored type of a cell as reported by the reader.
type CellKind uint8

const (
	// KindUnknown marks cells whose stored type is not known. Their text
	// becomes a number only when the number prints back to the same text.
	KindUnknown CellKind = iota
	// KindText marks cells stored as strings, dates or booleans.
	KindText
	// KindNumber marks cells stored as numbers.
	KindNumber
)

// NewGrid wraps rows as a Grid with no type information. The rows are not
// copied.
func NewGrid(name string, rows [][]string) *Grid {
	return NewTypedGrid(name, rows, nil)
}

// NewTypedGrid wraps rows together with the stored kind of each cell.
// kinds is indexed like rows; missing entries are KindUnknown.
func NewTypedGrid(name string, rows [][]string, kinds [][]CellKind) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return &Grid{Name: name, rows: rows, kinds: kinds, width: width}
}

// NumRows returns the number of rows in the grid.
func (g *Grid) NumRows() int {
	return len(g.rows)
}

// NumCols returns the width of the widest row.
func (g *Grid) NumCols() int {
	return g.width
}

// Cell returns the raw text at (row, col) and whether the position exists.
func (g *Grid) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(g.rows) || col < 0 {
		return "", false
	}
	r := g.rows[row]
	if col >= len(r) {
		return "", false
	}
	return r[col], true
}

// Text returns the trimmed text at (row, col), or "" when absent.
func (g *Grid) Text(row, col int) string {
	s, _ := g.Cell(row, col)
	return strings.TrimSpace(s)
}

// IsBlank reports whether (row, col) is absent or whitespace only.
func (g *Grid) IsBlank(row, col int) bool {
	return g.Text(row, col) == ""
}

// Kind returns the stored kind of the cell at (row, col).
func (g *Grid) Kind(row, col int) CellKind {
	if row < 0 || row >= len(g.kinds) || col < 0 || col >= len(g.kinds[row]) {
		return KindUnknown
	}
	return g.kinds[row][col]
}

// Value returns the typed scalar at (row, col). Blank cells yield nil.
// Only numeric cells become numbers; text cells keep their text.
func (g *Grid) Value(row, col int) interface{} {
	s, ok := g.Cell(row, col)
	if !ok {
		return nil
	}
	return scalar(s, g.Kind(row, col))
}

// RowIsBlank reports whether every cell of the row is blank.
func (g *Grid) RowIsBlank(row int) bool {
	if row < 0 || row >= len(g.rows) {
		return true
	}
	for _, cell := range g.rows[row] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
