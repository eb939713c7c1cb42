package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Region summarizes the populated part of a sheet.
type Region struct {
	// Range is the bounding box of non-blank cells (e.g. "A1:H24").
	// Empty when the sheet has no data.
	Range string
	// NonEmpty is the number of non-blank cells inside the range.
	NonEmpty int
	// Density is NonEmpty divided by the area of the range.
	Density float64
}

// DataRegion computes the populated region of a grid.
func DataRegion(g *Grid) Region {
	minRow, maxRow, minCol, maxCol := findDataBounds(g)
	if minRow < 0 {
		return Region{}
	}

	nonEmpty := countNonEmptyCells(g, minRow, maxRow, minCol, maxCol)
	total := (maxRow - minRow + 1) * (maxCol - minCol + 1)

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)

	return Region{
		Range:    fmt.Sprintf("%s:%s", startCell, endCell),
		NonEmpty: nonEmpty,
		Density:  float64(nonEmpty) / float64(total),
	}
}

// findDataBounds finds the bounding box of non-blank cells.
func findDataBounds(g *Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for r := 0; r < g.NumRows(); r++ {
		for c := 0; c < g.NumCols(); c++ {
			if g.IsBlank(r, c) {
				continue
			}
			if minRow < 0 || r < minRow {
				minRow = r
			}
			if maxRow < 0 || r > maxRow {
				maxRow = r
			}
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if maxCol < 0 || c > maxCol {
				maxCol = c
			}
		}
	}

	return
}

// countNonEmptyCells counts non-blank cells within bounds.
func countNonEmptyCells(g *Grid, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if !g.IsBlank(r, c) {
				count++
			}
		}
	}
	return count
}
