package pmsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be opened as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrNoSheets indicates the workbook has no sheets to read.
var ErrNoSheets = errors.New("workbook has no sheets")

// Components reported by ExtractionError.
const (
	// ComponentPrimary is the machine table on the first sheet.
	ComponentPrimary = "primary"
	// ComponentMachine is a linked machine sheet.
	ComponentMachine = "machine"
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // ComponentPrimary or ComponentMachine
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
