package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamWorkbookMatchesExcelize(t *testing.T) {
	path := saveWorkbook(t)

	sw, err := OpenStream(path)
	require.NoError(t, err)
	defer sw.Close()

	ew, err := OpenExcelize(path)
	require.NoError(t, err)
	defer ew.Close()

	assert.Equal(t, ew.SheetNames(), sw.SheetNames())

	for _, name := range ew.SheetNames() {
		want, err := ew.Grid(name)
		require.NoError(t, err)
		got, err := sw.Grid(name)
		require.NoError(t, err)

		assert.Equal(t, want.NumRows(), got.NumRows(), name)
		for r := 0; r < want.NumRows(); r++ {
			for c := 0; c < want.NumCols(); c++ {
				assert.Equal(t, want.Text(r, c), got.Text(r, c), "%s %d,%d", name, r, c)
			}
		}
	}
}
