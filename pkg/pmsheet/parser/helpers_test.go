package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// gridOf builds a grid from literal rows.
func gridOf(rows ...[]string) *Grid {
	return NewGrid("Sheet1", rows)
}

// gridFromCells builds a grid from A1-addressed cells.
func gridFromCells(t *testing.T, cells map[string]string) *Grid {
	t.Helper()
	var rows [][]string
	for ref, v := range cells {
		col, row, err := excelize.CellNameToCoordinates(ref)
		require.NoError(t, err, ref)
		for len(rows) < row {
			rows = append(rows, nil)
		}
		for len(rows[row-1]) < col {
			rows[row-1] = append(rows[row-1], "")
		}
		rows[row-1][col-1] = v
	}
	return NewGrid("M1", rows)
}

// machineSheetCells returns a machine sheet with two parts and a history
// log of three events followed by a stray row after a blank line.
func machineSheetCells() map[string]string {
	return map[string]string{
		"A1": "Machine 1 PM Sheet",

		"D2": "Last PM Done", "E2": "2024-01-05",
		"D3": "Days Until Next PM", "E3": "12",
		"D4": "Recommended Date of Next PM", "E4": "2024-04-05",

		"D6": "Maintenance Done", "E6": "Pump", "F6": "Filter",
		"D7": "Maintenance Type", "E7": "Replace", "F7": "Clean",
		"D8": "Frequency", "E8": "90", "F8": "30",
		"D9": "Qty.", "E9": "1", "F9": "2",

		"A17": "Date", "B17": "Technician", "C17": "Work Order", "D17": "PO Number",
		"A18": "2024-01-05", "B18": "Sam", "C18": "WO-1", "D18": "4501", "E18": "Yes", "F18": "no",
		"A19": "2024-02-01", "B19": "Kim", "C19": "WO-2", "E19": " y ", "F19": "Completed",
		"A20": "2024-03-01", "B20": "Lee", "E20": "in progress", "F20": "TRUE",

		"A22": "2024-04-01", "B22": "Ignored", "E22": "yes",
	}
}
