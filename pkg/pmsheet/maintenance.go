package pmsheet

import (
	"context"
	"log/slog"

	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/parser"
)

// extractMaintenance builds the maintenance data of one machine sheet.
// Each call allocates fresh records, so machines sharing a sheet do not
// share parts.
func extractMaintenance(g *parser.Grid, opts Options, log *slog.Logger) *models.MaintenanceData {
	data := &models.MaintenanceData{
		Fields: parser.ExtractVerticalFields(g, opts.Vocabulary),
		Parts:  parser.ExtractParts(g, opts.Vocabulary, opts.Layout),
	}
	history := parser.ExtractHistory(g, opts.Layout)
	attachHistory(data.Parts, history, opts.HistoryAttach)

	if log.Enabled(context.Background(), slog.LevelDebug) {
		region := parser.DataRegion(g)
		log.Debug("read machine sheet",
			"sheet", g.Name,
			"range", region.Range,
			"nonempty", region.NonEmpty,
			"density", region.Density,
			"label_band", opts.Layout.LabelBand.String(),
			"history_header", opts.Layout.HistoryHeaderWindow.String(),
			"parts", len(data.Parts),
			"history_parts", history.Len(),
		)
	}
	return data
}

// attachHistory gives each part the history recorded under its name.
func attachHistory(parts []*models.Part, history *models.History, policy HistoryAttach) {
	if history.Len() == 0 {
		return
	}

	if policy == AttachLast {
		last := make(map[string]*models.Part, len(parts))
		for _, p := range parts {
			last[p.Name] = p
		}
		for _, name := range history.Names() {
			if p, ok := last[name]; ok {
				entries, _ := history.Entries(name)
				p.History = append([]models.HistoryEntry(nil), entries...)
			}
		}
		return
	}

	for _, p := range parts {
		if entries, ok := history.Entries(p.Name); ok {
			p.History = append([]models.HistoryEntry(nil), entries...)
		}
	}
}
