// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
)

// Format is an output document format.
type Format string

const (
	// FormatJSON writes the machine list as JSON.
	FormatJSON Format = "json"
	// FormatTOON writes the machine list as TOON.
	FormatTOON Format = "toon"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatTOON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json or toon)", s)
	}
}

// FileName returns the output file name for an input workbook,
// e.g. "PMSchedule.xlsm" becomes "output_PMSchedule.json".
func FileName(inputPath string, format Format) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	ext := ".json"
	if format == FormatTOON {
		ext = ".toon"
	}
	return "output_" + stem + ext
}

// ToJSON serializes the machine list of a workbook. Pretty output uses
// two-space indentation.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	machines := wb.Machines
	if machines == nil {
		machines = []*models.Machine{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(machines); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ToTOON serializes the machine list of a workbook as TOON. Keys follow
// the same order as ToJSON.
func ToTOON(wb *models.WorkbookData) ([]byte, error) {
	return []byte(encodeMachines(wb.Machines)), nil
}

// Encode serializes a workbook in the given format.
func Encode(wb *models.WorkbookData, format Format) ([]byte, error) {
	switch format {
	case FormatTOON:
		return ToTOON(wb)
	case FormatJSON, "":
		return ToJSON(wb, true)
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

// WriteFile serializes a workbook and writes it to path.
func WriteFile(path string, wb *models.WorkbookData, format Format) error {
	data, err := Encode(wb, format)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
