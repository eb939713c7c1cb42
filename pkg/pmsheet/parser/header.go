package parser

import "strings"

// LocateHeaderRow returns the first row in which at least minMatches cells
// equal one of the candidates, ignoring case and surrounding whitespace.
func LocateHeaderRow(g *Grid, candidates []string, minMatches int) (int, bool) {
	want := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		want[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}

	for r := 0; r < g.NumRows(); r++ {
		matches := 0
		for c := 0; c < g.NumCols(); c++ {
			text := g.Text(r, c)
			if text == "" {
				continue
			}
			if _, ok := want[strings.ToLower(text)]; ok {
				matches++
			}
		}
		if matches >= minMatches {
			return r, true
		}
	}
	return 0, false
}

// FindHeaderRow is LocateHeaderRow with a fallback: when no row qualifies
// it returns row 0.
func FindHeaderRow(g *Grid, candidates []string, minMatches int) int {
	row, ok := LocateHeaderRow(g, candidates, minMatches)
	if !ok {
		return 0
	}
	return row
}
