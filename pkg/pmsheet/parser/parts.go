package parser

import (
	"strings"

	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
)

// PartLabels records where the part field labels sit in the label band.
type PartLabels struct {
	// Fields lists the discovered fields in vocabulary order.
	Fields []string
	// Rows maps each discovered field to its zero-based row.
	Rows map[string]int
}

// Row returns the row of a discovered field.
func (l PartLabels) Row(field string) (int, bool) {
	r, ok := l.Rows[field]
	return r, ok
}

// LocatePartLabels scans the label band column by column for vertical
// field labels. A label seen twice keeps its last position.
func LocatePartLabels(g *Grid, vocab Vocabulary, layout Layout) PartLabels {
	known := make(map[string]struct{}, len(vocab.Vertical))
	for _, f := range vocab.Vertical {
		known[f] = struct{}{}
	}

	rows := make(map[string]int)
	rowStart, rowEnd := layout.LabelBand.RowSpan(g.NumRows())
	colStart, colEnd := layout.LabelBand.ColSpan(g.NumCols())
	for c := colStart; c < colEnd; c++ {
		for r := rowStart; r < rowEnd; r++ {
			text := g.Text(r, c)
			if _, ok := known[text]; ok {
				rows[text] = r
			}
		}
	}

	labels := PartLabels{Rows: rows}
	for _, f := range vocab.Vertical {
		if _, ok := rows[f]; ok {
			labels.Fields = append(labels.Fields, f)
		}
	}
	return labels
}

// ExtractParts reads the part table, one part per column starting at
// layout.DataStartCol. The table ends at the first column that is blank on
// every label row. Columns without a usable part name are skipped.
func ExtractParts(g *Grid, vocab Vocabulary, layout Layout) []*models.Part {
	labels := LocatePartLabels(g, vocab, layout)
	nameRow, hasName := labels.Row(vocab.PartName)

	var parts []*models.Part
	for c := layout.DataStartCol; c < g.NumCols(); c++ {
		if columnIsBlank(g, c, labels) {
			break
		}
		if !hasName {
			continue
		}
		name := g.Text(nameRow, c)
		if name == "" || strings.EqualFold(name, "nan") {
			continue
		}

		maintenance := make(models.Fields, 0, len(labels.Fields))
		for _, f := range labels.Fields {
			maintenance = append(maintenance, models.Field{Name: f, Value: g.Value(labels.Rows[f], c)})
		}
		parts = append(parts, &models.Part{Name: name, Maintenance: maintenance})
	}
	return parts
}

// columnIsBlank reports whether column c is blank on every label row.
// With no labels every column counts as blank.
func columnIsBlank(g *Grid, c int, labels PartLabels) bool {
	for _, f := range labels.Fields {
		if !g.IsBlank(labels.Rows[f], c) {
			return false
		}
	}
	return true
}
