package models

// WorkbookData is the extraction result for one workbook file.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Machines lists the machine table rows in sheet order.
	Machines []*Machine `json:"machines"`
}
