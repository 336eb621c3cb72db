package jsonreport

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/IgorBayerl/linereader/internal/reporter"
)

type fileEntry struct {
	Path  string    `json:"path"`
	Lines *[]string `json:"lines,omitempty"`
	Count int       `json:"count"`
}

// JSONReportBuilder writes an indented JSON array with one object per file.
type JSONReportBuilder struct{}

func init() {
	reporter.RegisterBuilder(NewJSONReportBuilder())
}

// NewJSONReportBuilder creates a new, stateless JSONReportBuilder.
func NewJSONReportBuilder() reporter.Builder {
	return &JSONReportBuilder{}
}

func (b *JSONReportBuilder) Name() string {
	return "json"
}

// CreateReport encodes files as JSON. Lines are left out in count mode.
// NumberLines has no effect, the array index already is the line number.
func (b *JSONReportBuilder) CreateReport(w io.Writer, files []reporter.FileLines, opts reporter.Options) error {
	entries := make([]fileEntry, 0, len(files))
	for _, f := range files {
		entry := fileEntry{Path: f.Path, Count: f.Count}
		if !opts.CountOnly {
			lines := f.Lines
			if lines == nil {
				lines = []string{}
			}
			entry.Lines = &lines
		}
		entries = append(entries, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to write json report: %w", err)
	}
	return nil
}
