package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
)

func sampleWorkbook() *models.WorkbookData {
	return &models.WorkbookData{
		BookName: "schedule.xlsx",
		Machines: []*models.Machine{
			{
				Fields:    models.Fields{{Name: "Machine Number", Value: int64(1)}, {Name: "Machine", Value: "Lathe & Co <A>"}},
				SheetName: "M1",
				Maintenance: &models.MaintenanceData{
					Fields: models.Fields{{Name: "Qty.", Value: nil}},
					Parts: []*models.Part{{
						Name:        "Pump",
						Maintenance: models.Fields{{Name: "Frequency", Value: int64(90)}},
					}},
				},
			},
			{
				Fields: models.Fields{{Name: "Machine Number", Value: int64(2)}, {Name: "Machine", Value: nil}},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("toon")
	require.NoError(t, err)
	assert.Equal(t, FormatTOON, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "output_JadePMSchedule.json", FileName("/data/JadePMSchedule.xlsm", FormatJSON))
	assert.Equal(t, "output_plant.2024.toon", FileName("plant.2024.xlsx", FormatTOON))
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleWorkbook(), true)
	require.NoError(t, err)

	expected := `[
  {
    "Machine Number": 1,
    "Machine": "Lathe & Co <A>",
    "Sheet Name": "M1",
    "MaintenanceData": {
      "Qty.": null,
      "Parts": [
        {
          "Part Name": "Pump",
          "Maintenance": {
            "Frequency": 90
          }
        }
      ]
    }
  },
  {
    "Machine Number": 2,
    "Machine": null
  }
]`
	assert.Equal(t, expected, string(data))
}

func TestToJSONCompactAndEmpty(t *testing.T) {
	data, err := ToJSON(&models.WorkbookData{}, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = ToJSON(sampleWorkbook(), false)
	require.NoError(t, err)
	assert.Equal(t, "Pump", gjson.GetBytes(data, `0.MaintenanceData.Parts.0.Part Name`).String())
	assert.Equal(t, gjson.Null, gjson.GetBytes(data, `0.MaintenanceData.Qty\.`).Type)
}

func TestToTOON(t *testing.T) {
	data, err := ToTOON(sampleWorkbook())
	require.NoError(t, err)

	expected := `[2]:
  - Machine Number: 1
    Machine: Lathe & Co <A>
    Sheet Name: M1
    MaintenanceData:
      Qty.: null
      Parts[1]:
        - Part Name: Pump
          Maintenance:
            Frequency: 90
  - Machine Number: 2
    Machine: null`
	assert.Equal(t, expected, string(data))
}

func TestToTOONIsStable(t *testing.T) {
	wb := sampleWorkbook()
	wb.Machines[0].Fields = append(wb.Machines[0].Fields,
		models.Field{Name: "Serial Number", Value: "007"},
		models.Field{Name: "Location", Value: "Bay 4"},
		models.Field{Name: "Next PM Date", Value: "2024-06-01"},
	)

	first, err := ToTOON(wb)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := ToTOON(wb)
		require.NoError(t, err)
		require.Equal(t, string(first), string(again))
	}

	s := string(first)
	prev := -1
	for _, key := range []string{"Machine Number", "Machine:", "Serial Number", "Location", "Next PM Date", "Sheet Name", "MaintenanceData"} {
		idx := strings.Index(s, key)
		require.Greater(t, idx, prev, "key %q out of order", key)
		prev = idx
	}
	assert.Contains(t, s, `Serial Number: "007"`)
}

func TestToTOONHistoryTable(t *testing.T) {
	wb := &models.WorkbookData{Machines: []*models.Machine{{
		Fields: models.Fields{{Name: "Machine Number", Value: int64(1)}},
		Maintenance: &models.MaintenanceData{
			Parts: []*models.Part{{
				Name:        "Pump",
				Maintenance: models.Fields{},
				History: []models.HistoryEntry{{
					Date:             "2024-01-05",
					Technician:       "JD",
					WorkOrder:        "007",
					PONumber:         int64(4501),
					MaintenanceType:  "Maintenance",
					CompletionStatus: "Completed",
				}},
			}},
		},
	}}}

	data, err := ToTOON(wb)
	require.NoError(t, err)

	expected := `[1]:
  - Machine Number: 1
    MaintenanceData:
      Parts[1]:
        - Part Name: Pump
          Maintenance:
          Historical_Maintenance[1]{Last PM Done,Technician,Work Order,Po Number,Maintenance Type,Completion Status}:
            "2024-01-05",JD,"007",4501,Maintenance,Completed`
	assert.Equal(t, expected, string(data))
}

func TestToTOONEmpty(t *testing.T) {
	data, err := ToTOON(&models.WorkbookData{})
	require.NoError(t, err)
	assert.Equal(t, "[0]:", string(data))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, sampleWorkbook(), FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gjson.GetBytes(data, "#").Int())

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "out.json"), sampleWorkbook(), FormatJSON)
	assert.Error(t, err)

	err = WriteFile(path, sampleWorkbook(), Format("xml"))
	assert.Error(t, err)
}
