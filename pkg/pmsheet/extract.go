package pmsheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/parser"
)

// Open opens a workbook file with the selected backend.
func Open(path string, reader Reader) (parser.Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var (
		wb  parser.Workbook
		err error
	)
	switch reader {
	case ReaderStream:
		wb, err = parser.OpenStream(path)
	default:
		wb, err = parser.OpenExcelize(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return wb, nil
}

// Extract extracts the maintenance schedule from a workbook file.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	opts = opts.withDefaults()

	wb, err := Open(path, opts.Reader)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return ExtractWorkbook(wb, filepath.Base(path), opts)
}

// ExtractWorkbook extracts the maintenance schedule from an open workbook.
// The first sheet holds the machine table; each machine linked to another
// sheet gets that sheet's maintenance data.
func ExtractWorkbook(wb parser.Workbook, bookName string, opts Options) (*models.WorkbookData, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With("book", bookName)

	sheetNames := wb.SheetNames()
	if len(sheetNames) == 0 {
		return nil, ErrNoSheets
	}

	primary, err := wb.Grid(sheetNames[0])
	if err != nil {
		return nil, NewExtractionError(sheetNames[0], ComponentPrimary, err)
	}
	machines := parser.ExtractMachines(primary, sheetNames, opts.Vocabulary)
	log.Debug("read machine table", "sheet", primary.Name, "machines", len(machines))

	grids := make(map[string]*parser.Grid)
	linked := 0
	for _, m := range machines {
		if m.SheetName == "" {
			continue
		}
		g, ok := grids[m.SheetName]
		if !ok {
			g, err = wb.Grid(m.SheetName)
			if err != nil {
				return nil, NewExtractionError(m.SheetName, ComponentMachine, err)
			}
			grids[m.SheetName] = g
		}
		m.Maintenance = extractMaintenance(g, opts, log)
		linked++
	}

	log.Info("extracted workbook", "machines", len(machines), "linked", linked)
	return &models.WorkbookData{
		BookName: bookName,
		Machines: machines,
	}, nil
}
