// Package pmsheet extracts preventive maintenance schedules from workbooks.
package pmsheet

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/parser"
)

// HistoryAttach selects how history is attached when several parts share
// a name.
type HistoryAttach string

const (
	// AttachAll gives the name's history to every part with that name.
	AttachAll HistoryAttach = "all"
	// AttachLast gives the name's history only to the last part with that
	// name; earlier parts keep no history.
	AttachLast HistoryAttach = "last"
)

// Reader selects the workbook reading backend.
type Reader string

const (
	// ReaderExcelize loads workbooks with excelize.
	ReaderExcelize Reader = "excelize"
	// ReaderStream streams rows with xlsxreader.
	ReaderStream Reader = "stream"
)

// Options configures extraction behavior.
type Options struct {
	// Vocabulary lists the recognized field labels.
	Vocabulary parser.Vocabulary
	// Layout holds the positional conventions of machine sheets.
	Layout parser.Layout
	// HistoryAttach resolves duplicate part names. Defaults to AttachAll.
	HistoryAttach HistoryAttach
	// Reader selects the workbook backend. Defaults to ReaderExcelize.
	Reader Reader
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Vocabulary:    parser.DefaultVocabulary(),
		Layout:        parser.DefaultLayout(),
		HistoryAttach: AttachAll,
		Reader:        ReaderExcelize,
	}
}

// ParseHistoryAttach validates a history attach policy name.
func ParseHistoryAttach(s string) (HistoryAttach, error) {
	switch p := HistoryAttach(strings.ToLower(strings.TrimSpace(s))); p {
	case AttachAll, AttachLast:
		return p, nil
	default:
		return "", fmt.Errorf("invalid history attach policy: %s (must be all or last)", s)
	}
}

// ParseReader validates a reader backend name.
func ParseReader(s string) (Reader, error) {
	switch r := Reader(strings.ToLower(strings.TrimSpace(s))); r {
	case ReaderExcelize, ReaderStream:
		return r, nil
	default:
		return "", fmt.Errorf("invalid reader: %s (must be excelize or stream)", s)
	}
}

// withDefaults fills zero-valued settings from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if len(o.Vocabulary.Primary) == 0 && len(o.Vocabulary.Vertical) == 0 {
		o.Vocabulary = d.Vocabulary
	}
	if o.Layout.HistoryHeaderLabel == "" && len(o.Layout.CompletionMarkers) == 0 {
		o.Layout = d.Layout
	}
	if o.HistoryAttach == "" {
		o.HistoryAttach = d.HistoryAttach
	}
	if o.Reader == "" {
		o.Reader = d.Reader
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
