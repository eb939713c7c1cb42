package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Window is a rectangular cell range used to bound a heuristic scan.
// Coordinates are 1-based and inclusive, as in A1 notation.
type Window struct {
	R1 int
	C1 int
	R2 int
	C2 int
}

// ParseWindow parses a range such as "D1:F20", "$A$16:$E$25" or
// "'PM Sheet'!A1:B2". A single cell reference yields a one-cell window.
// The sheet part, if any, is ignored.
func ParseWindow(ref string) (Window, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return Window{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Window{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Window{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return Window{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// MustParseWindow is like ParseWindow but panics on error.
// It is meant for package-level defaults.
func MustParseWindow(ref string) Window {
	w, err := ParseWindow(ref)
	if err != nil {
		panic(err)
	}
	return w
}

// RowSpan returns the zero-based half-open row range clipped to n rows.
func (w Window) RowSpan(n int) (start, end int) {
	return clip(w.R1-1, w.R2, n)
}

// ColSpan returns the zero-based half-open column range clipped to n columns.
func (w Window) ColSpan(n int) (start, end int) {
	return clip(w.C1-1, w.C2, n)
}

// String returns the window in A1 notation.
func (w Window) String() string {
	start, err := excelize.CoordinatesToCellName(w.C1, w.R1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(w.C2, w.R2)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

func clip(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}
