package parser

import (
	"strings"

	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
)

// Leading columns of every history log row.
const (
	historyDateCol = iota
	historyTechnicianCol
	historyWorkOrderCol
	historyPONumberCol
)

// HistoryColumns associates history log columns with parts.
type HistoryColumns struct {
	// Cols lists the columns that carry a part name, left to right.
	Cols []int
	// Names maps a column to its part name.
	Names map[int]string
	// Types maps a column to its maintenance type, when one is labelled.
	Types map[int]string
}

// LocateHistoryHeader finds the row of the history log header: the first
// cell inside layout.HistoryHeaderWindow whose text is the header label.
func LocateHistoryHeader(g *Grid, layout Layout) (int, bool) {
	rowStart, rowEnd := layout.HistoryHeaderWindow.RowSpan(g.NumRows())
	colStart, colEnd := layout.HistoryHeaderWindow.ColSpan(g.NumCols())
	for r := rowStart; r < rowEnd; r++ {
		for c := colStart; c < colEnd; c++ {
			if strings.EqualFold(g.Text(r, c), layout.HistoryHeaderLabel) {
				return r, true
			}
		}
	}
	return 0, false
}

// LocateHistoryColumns reads part names and maintenance types for every
// data column from the label rows above the log. The label itself is taken
// from the first column of layout.HistoryLabelWindow. Later rows overwrite
// earlier ones.
func LocateHistoryColumns(g *Grid, layout Layout) HistoryColumns {
	hc := HistoryColumns{
		Names: make(map[int]string),
		Types: make(map[int]string),
	}

	labelCol := layout.HistoryLabelWindow.C1 - 1
	rowStart, rowEnd := layout.HistoryLabelWindow.RowSpan(g.NumRows())
	for c := layout.DataStartCol; c < g.NumCols(); c++ {
		for r := rowStart; r < rowEnd; r++ {
			cell := g.Text(r, c)
			if cell == "" || strings.EqualFold(cell, "nan") {
				continue
			}
			label := g.Text(r, labelCol)
			switch {
			case strings.EqualFold(label, layout.PartNameLabel):
				hc.Names[c] = cell
			case strings.EqualFold(label, layout.TypeLabel):
				hc.Types[c] = cell
			}
		}
		if _, ok := hc.Names[c]; ok {
			hc.Cols = append(hc.Cols, c)
		}
	}
	return hc
}

// ExtractHistory reads the history log below the part table. Each row
// until the first blank one is an event; every part column holding a
// completion marker yields one entry for that part. An empty History is
// returned when the sheet has no log.
func ExtractHistory(g *Grid, layout Layout) *models.History {
	history := models.NewHistory()

	headerRow, ok := LocateHistoryHeader(g, layout)
	if !ok {
		return history
	}

	markers := make(map[string]struct{}, len(layout.CompletionMarkers))
	for _, m := range layout.CompletionMarkers {
		markers[strings.ToLower(strings.TrimSpace(m))] = struct{}{}
	}

	cols := LocateHistoryColumns(g, layout)
	for r := headerRow + 1; r < g.NumRows(); r++ {
		if g.RowIsBlank(r) {
			break
		}
		for _, c := range cols.Cols {
			status := strings.ToLower(g.Text(r, c))
			if _, done := markers[status]; !done {
				continue
			}
			mtype, ok := cols.Types[c]
			if !ok {
				mtype = layout.DefaultMaintenanceType
			}
			history.Add(cols.Names[c], models.HistoryEntry{
				Date:             g.Value(r, historyDateCol),
				Technician:       g.Value(r, historyTechnicianCol),
				WorkOrder:        g.Value(r, historyWorkOrderCol),
				PONumber:         g.Value(r, historyPONumberCol),
				MaintenanceType:  mtype,
				CompletionStatus: status,
			})
		}
	}
	return history
}
