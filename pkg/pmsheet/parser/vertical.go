package parser

import (
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
)

// LocateLabel returns the position of the first cell, in row-major order,
// whose trimmed text equals label.
func LocateLabel(g *Grid, label string) (row, col int, ok bool) {
	for r := 0; r < g.NumRows(); r++ {
		for c := 0; c < g.NumCols(); c++ {
			if g.Text(r, c) == label {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// ExtractVerticalFields reads label/value pairs laid out side by side.
// For each vertical field the value is the cell right of the first
// matching label. The result follows vocabulary order and holds every
// field, nil when the label or its value is missing.
func ExtractVerticalFields(g *Grid, vocab Vocabulary) models.Fields {
	fields := make(models.Fields, 0, len(vocab.Vertical))
	for _, name := range vocab.Vertical {
		var value interface{}
		if r, c, ok := LocateLabel(g, name); ok {
			value = g.Value(r, c+1)
		}
		fields = append(fields, models.Field{Name: name, Value: value})
	}
	return fields
}
