package textsummary

import (
	"bufio"
	"fmt"
	"io"

	"github.com/IgorBayerl/linereader/internal/reporter"
)

// TextReportBuilder writes lines back out as plain text.
type TextReportBuilder struct{}

func init() {
	reporter.RegisterBuilder(NewTextReportBuilder())
}

// NewTextReportBuilder creates a new, stateless TextReportBuilder.
func NewTextReportBuilder() reporter.Builder {
	return &TextReportBuilder{}
}

func (b *TextReportBuilder) Name() string {
	return "text"
}

// CreateReport prints every line terminated by "\n". With more than one file,
// each block starts with a "==> path <==" header. In count mode it prints
// "path: count" per file instead.
func (b *TextReportBuilder) CreateReport(w io.Writer, files []reporter.FileLines, opts reporter.Options) error {
	bw := bufio.NewWriter(w)

	for i, f := range files {
		if opts.CountOnly {
			fmt.Fprintf(bw, "%s: %d\n", f.Path, f.Count)
			continue
		}
		if len(files) > 1 {
			if i > 0 {
				bw.WriteString("\n")
			}
			fmt.Fprintf(bw, "==> %s <==\n", f.Path)
		}
		width := len(fmt.Sprint(len(f.Lines)))
		for n, line := range f.Lines {
			if opts.NumberLines {
				fmt.Fprintf(bw, "%*d: ", width, n+1)
			}
			bw.WriteString(line)
			bw.WriteString("\n")
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}
