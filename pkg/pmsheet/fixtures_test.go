package pmsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// scheduleSheets describes a PM schedule workbook: a machine table on the
// first sheet and one machine sheet per linked machine.
var scheduleSheets = []struct {
	name  string
	cells map[string]interface{}
}{
	{
		name: "Schedule",
		cells: map[string]interface{}{
			"A1": "Jade PM Schedule",
			"A3": "Machine Number", "B3": "Serial Number", "C3": "Machine", "D3": "Next PM Date",
			"E3": "Days Until Next PM", "F3": "Sheet Link", "G3": "Comments for Maintenance", "H3": "Comments for Parts",
			"A4": 1, "B4": "SN-100", "C4": "Lathe", "D4": "2024-04-05", "E4": 12, "F4": "M1", "G4": "check belts",
			"A5": 2, "B5": "SN-200", "C5": "Mill", "E5": 3.5, "F5": "Gone",
			"A6": 3, "B6": "SN-300", "C6": "Press", "F6": "M2",
		},
	},
	{
		name: "M1",
		cells: map[string]interface{}{
			"D2": "Last PM Done", "E2": "2024-01-05",
			"D3": "Days Until Next PM", "E3": 12,
			"D6": "Maintenance Done", "E6": "Pump", "F6": "Filter", "G6": "Pump",
			"D7": "Maintenance Type", "E7": "Replace", "F7": "Clean", "G7": "Inspect",
			"D8": "Frequency", "E8": 90, "F8": 30, "G8": 180,
			"A17": "Date", "B17": "Technician", "C17": "Work Order", "D17": "PO Number",
			"A18": "2024-01-05", "B18": "Sam", "C18": "WO-1", "D18": 4501, "E18": "Yes", "F18": "no",
			"A19": "2024-02-01", "B19": "Kim", "C19": "WO-2", "F19": "Completed", "G19": "y",
		},
	},
	{
		name: "M2",
		cells: map[string]interface{}{
			"D6": "Maintenance Done", "E6": "Belt",
			"D8": "Frequency", "E8": 60,
		},
	},
}

// writeScheduleWorkbook saves the schedule workbook under dir.
func writeScheduleWorkbook(t *testing.T, dir, name string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range scheduleSheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		for ref, v := range sheet.cells {
			require.NoError(t, f.SetCellValue(sheet.name, ref, v))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// writeCorruptWorkbook writes a file with a workbook extension that is not
// a workbook.
func writeCorruptWorkbook(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))
	return path
}
