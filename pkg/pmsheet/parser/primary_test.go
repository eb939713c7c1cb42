package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func primaryGrid() *Grid {
	return gridOf(
		[]string{"Jade PM Schedule"},
		[]string{},
		[]string{"Machine Number", "Serial Number", "Machine", "Next PM Date", "Days Until Next PM", "Sheet Link", "Comments for Maintenance", "Comments for Parts"},
		[]string{"1", "SN-100", "Lathe", "2024-04-05", "12", "M1", "check belts", ""},
		[]string{"2", "SN-200", "Mill", "", "3.5", "Missing", "", "order filter"},
		[]string{},
		[]string{"3", "", "Press", "", "", "  "},
	)
}

func TestExtractMachines(t *testing.T) {
	vocab := DefaultVocabulary()
	machines := ExtractMachines(primaryGrid(), []string{"Schedule", "M1", "M2"}, vocab)
	require.Len(t, machines, 4)

	for _, m := range machines {
		assert.Equal(t, vocab.Primary, m.Fields.Names())
	}

	first := machines[0]
	num, _ := first.Fields.Get(FieldMachineNumber)
	assert.Equal(t, int64(1), num)
	name, _ := first.Fields.Get(FieldMachine)
	assert.Equal(t, "Lathe", name)
	link, _ := first.Fields.Get(FieldSheetLink)
	assert.Equal(t, "M1", link)
	parts, _ := first.Fields.Get(FieldCommentsForParts)
	assert.Nil(t, parts)
	assert.Equal(t, "M1", first.SheetName)

	second := machines[1]
	days, _ := second.Fields.Get(FieldDaysUntilNextPM)
	assert.Equal(t, 3.5, days)
	next, _ := second.Fields.Get(FieldNextPMDate)
	assert.Nil(t, next)
	// a link to a sheet that does not exist is not an error
	assert.Empty(t, second.SheetName)

	blank := machines[2]
	for _, f := range blank.Fields {
		assert.Nil(t, f.Value, f.Name)
	}
	assert.Empty(t, blank.SheetName)

	assert.Empty(t, machines[3].SheetName)
}

func TestExtractMachinesMissingColumns(t *testing.T) {
	g := gridOf(
		[]string{"Machine", "Machine Number", "Sheet Link", "Owner"},
		[]string{"Lathe", "7", "M1", "Dana"},
	)
	machines := ExtractMachines(g, []string{"Main", "M1"}, DefaultVocabulary())
	require.Len(t, machines, 1)

	m := machines[0]
	assert.Len(t, m.Fields, 8)
	serial, ok := m.Fields.Get(FieldSerialNumber)
	assert.True(t, ok)
	assert.Nil(t, serial)
	_, ok = m.Fields.Get("Owner")
	assert.False(t, ok)
	assert.Equal(t, "M1", m.SheetName)
}

func TestExtractMachinesWithoutHeaderFallsBackToFirstRow(t *testing.T) {
	g := gridOf(
		[]string{"Machine", "Notes"},
		[]string{"Lathe", "x"},
		[]string{"Mill", "y"},
	)
	machines := ExtractMachines(g, []string{"Main"}, DefaultVocabulary())
	require.Len(t, machines, 2)
	name, _ := machines[1].Fields.Get(FieldMachine)
	assert.Equal(t, "Mill", name)
}

func TestExtractMachinesLinkIsExactMatch(t *testing.T) {
	g := gridOf(
		[]string{"Machine Number", "Machine", "Sheet Link"},
		[]string{"1", "Lathe", "m1"},
		[]string{"2", "Mill", "12"},
	)
	machines := ExtractMachines(g, []string{"Main", "M1", "12"}, DefaultVocabulary())
	require.Len(t, machines, 2)
	assert.Empty(t, machines[0].SheetName)
	assert.Equal(t, "12", machines[1].SheetName)
}
