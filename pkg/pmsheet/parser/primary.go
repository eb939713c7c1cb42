package parser

import (
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
)

// ExtractMachines reads the machine table of the primary sheet.
// Every row below the header row becomes one Machine holding all primary
// fields. The sheet link is kept only when it names one of sheetNames.
func ExtractMachines(g *Grid, sheetNames []string, vocab Vocabulary) []*models.Machine {
	headerRow := FindHeaderRow(g, vocab.Primary, vocab.MinHeaderMatches)

	// first occurrence of a label wins
	columns := make(map[string]int)
	for c := 0; c < g.NumCols(); c++ {
		label := g.Text(headerRow, c)
		if label == "" {
			continue
		}
		if _, ok := columns[label]; !ok {
			columns[label] = c
		}
	}

	sheets := make(map[string]struct{}, len(sheetNames))
	for _, name := range sheetNames {
		sheets[name] = struct{}{}
	}

	var machines []*models.Machine
	for r := headerRow + 1; r < g.NumRows(); r++ {
		m := &models.Machine{Fields: make(models.Fields, 0, len(vocab.Primary))}
		for _, field := range vocab.Primary {
			var value interface{}
			if c, ok := columns[field]; ok {
				value = g.Value(r, c)
			}
			m.Fields = append(m.Fields, models.Field{Name: field, Value: value})
		}

		if c, ok := columns[vocab.SheetLink]; ok && !g.IsBlank(r, c) {
			link, _ := g.Cell(r, c)
			if _, exists := sheets[link]; exists {
				m.SheetName = link
			}
		}
		machines = append(machines, m)
	}
	return machines
}
