package parser

// Field names of the primary machine table.
const (
	FieldMachineNumber          = "Machine Number"
	FieldSerialNumber           = "Serial Number"
	FieldMachine                = "Machine"
	FieldNextPMDate             = "Next PM Date"
	FieldDaysUntilNextPM        = "Days Until Next PM"
	FieldSheetLink              = "Sheet Link"
	FieldCommentsForMaintenance = "Comments for Maintenance"
	FieldCommentsForParts       = "Comments for Parts"
)

// Field names of the vertical label/value layout on machine sheets.
const (
	FieldLastPMDone              = "Last PM Done"
	FieldRecommendedDateOfNextPM = "Recommended Date of Next PM"
	FieldMaintenanceType         = "Maintenance Type"
	FieldMaintenanceDone         = "Maintenance Done"
	FieldRequiredMaterials       = "Required Materials"
	FieldQty                     = "Qty."
	FieldFrequency               = "Frequency"
)

// Vocabulary lists the field labels the extractors recognize.
// Values are passed by value into every extractor; callers that need a
// different workbook convention build their own.
type Vocabulary struct {
	// Primary is the ordered field list of the machine table.
	Primary []string
	// Vertical is the ordered field list of machine sheets.
	Vertical []string
	// SheetLink is the primary field whose value names a machine sheet.
	SheetLink string
	// PartName is the vertical field whose cell names a part column.
	PartName string
	// MinHeaderMatches is the number of primary labels a row needs to be
	// taken as the header row.
	MinHeaderMatches int
}

// DefaultVocabulary returns the labels used by the PM schedule workbooks.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Primary: []string{
			FieldMachineNumber,
			FieldSerialNumber,
			FieldMachine,
			FieldNextPMDate,
			FieldDaysUntilNextPM,
			FieldSheetLink,
			FieldCommentsForMaintenance,
			FieldCommentsForParts,
		},
		Vertical: []string{
			FieldDaysUntilNextPM,
			FieldLastPMDone,
			FieldRecommendedDateOfNextPM,
			FieldMaintenanceType,
			FieldMaintenanceDone,
			FieldRequiredMaterials,
			FieldQty,
			FieldFrequency,
		},
		SheetLink:        FieldSheetLink,
		PartName:         FieldMaintenanceDone,
		MinHeaderMatches: 3,
	}
}

// Layout holds the positional conventions of a machine sheet.
type Layout struct {
	// LabelBand is where part field labels are searched.
	LabelBand Window
	// DataStartCol is the zero-based first column holding part data,
	// for both the part table and the history log.
	DataStartCol int

	// HistoryHeaderWindow is where the history "date" header is searched.
	HistoryHeaderWindow Window
	// HistoryHeaderLabel is the header text that marks the history log.
	HistoryHeaderLabel string
	// HistoryLabelWindow bounds the label rows read for part names and
	// maintenance types. Its first column holds the labels.
	HistoryLabelWindow Window
	// PartNameLabel and TypeLabel are matched against that label column.
	PartNameLabel string
	TypeLabel     string
	// CompletionMarkers are the lowercase values that mark a part done.
	CompletionMarkers []string
	// DefaultMaintenanceType is used when a column has no type label.
	DefaultMaintenanceType string
}

// DefaultLayout returns the layout of the PM schedule workbooks.
func DefaultLayout() Layout {
	return Layout{
		LabelBand:              MustParseWindow("D1:F20"),
		DataStartCol:           4,
		HistoryHeaderWindow:    MustParseWindow("A16:E25"),
		HistoryHeaderLabel:     "date",
		HistoryLabelWindow:     MustParseWindow("D6:D15"),
		PartNameLabel:          "maintenance done",
		TypeLabel:              "maintenance type",
		CompletionMarkers:      []string{"yes", "completed", "y", "true"},
		DefaultMaintenanceType: "Maintenance",
	}
}
