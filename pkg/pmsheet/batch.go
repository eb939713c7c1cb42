package pmsheet

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/output"
)

// tempFilePrefix marks lock files that spreadsheet programs leave next to
// open workbooks.
const tempFilePrefix = "~$"

// Discover lists the workbook files (*.xls*) in dir, sorted by name,
// skipping temporary lock files.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.xls*"))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), tempFilePrefix) {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

// FileResult is the outcome of processing one workbook file.
type FileResult struct {
	// Path is the input workbook.
	Path string
	// Output is the written document, empty on failure.
	Output string
	// Machines is the number of machine records written.
	Machines int
	// Err is set when the workbook could not be processed.
	Err error
}

// OK reports whether the file was processed.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Runner processes workbook files one after another. A failing file is
// recorded in its FileResult and does not stop the run.
type Runner struct {
	// Options configures extraction.
	Options Options
	// Format is the output document format.
	Format output.Format
	// OutDir receives the output files. If empty, each output is written
	// next to its input.
	OutDir string
	// Console receives one progress line per step. If nil, nothing is printed.
	Console io.Writer

	// extract replaces Extract in tests.
	extract func(path string, opts Options) (*models.WorkbookData, error)
}

// Run processes every path in order and returns one result per path.
func (r *Runner) Run(paths []string) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, r.ProcessFile(path))
	}
	return results
}

// ProcessFile extracts one workbook and writes its output document.
// A panic while reading the workbook is reported as a failed result.
func (r *Runner) ProcessFile(path string) (result FileResult) {
	opts := r.Options.withDefaults()
	log := opts.Logger.With("file", path)
	result = FileResult{Path: path}

	r.printf("Processing %s...\n", filepath.Base(path))

	defer func() {
		if p := recover(); p != nil {
			result = r.fail(FileResult{Path: path}, fmt.Errorf("panic: %v", p))
		}
	}()

	extract := r.extract
	if extract == nil {
		extract = Extract
	}
	wb, err := extract(path, opts)
	if err != nil {
		return r.fail(result, err)
	}

	dir := r.OutDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	outPath := filepath.Join(dir, output.FileName(path, r.Format))
	if err := output.WriteFile(outPath, wb, r.Format); err != nil {
		return r.fail(result, err)
	}

	result.Output = outPath
	result.Machines = len(wb.Machines)
	log.Info("wrote output", "output", outPath, "machines", result.Machines)
	r.printf("Extraction complete. Data saved to %s.\n", outPath)
	return result
}

func (r *Runner) fail(result FileResult, err error) FileResult {
	result.Err = err
	r.Options.withDefaults().Logger.Error("failed to process workbook", "file", result.Path, "error", err)
	r.printf("Failed to process %s: %v\n", filepath.Base(result.Path), err)
	return result
}

func (r *Runner) printf(format string, args ...interface{}) {
	if r.Console == nil {
		return
	}
	fmt.Fprintf(r.Console, format, args...)
}

// Summary counts succeeded and failed results.
func Summary(results []FileResult) (succeeded, failed int) {
	for _, res := range results {
		if res.OK() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
