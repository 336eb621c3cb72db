package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// FileLines is what the CLI collected for one input file.
type FileLines struct {
	Path  string
	Lines []string
	// Count is the number of lines. It is set even when Lines is not retained.
	Count int
}

// Options tunes how a builder renders its input.
type Options struct {
	CountOnly   bool
	NumberLines bool
}

// Builder defines the contract for all report writers.
type Builder interface {
	// Name returns the format name used on the command line (e.g. "text", "json").
	Name() string

	// CreateReport renders files to w in file order.
	CreateReport(w io.Writer, files []FileLines, opts Options) error
}

var registeredBuilders []Builder

// RegisterBuilder adds a builder to the list of available builders.
// This should be called by each builder implementation in its init() function.
func RegisterBuilder(b Builder) {
	registeredBuilders = append(registeredBuilders, b)
}

// Names returns the sorted names of all registered builders.
func Names() []string {
	names := make([]string, 0, len(registeredBuilders))
	for _, b := range registeredBuilders {
		names = append(names, b.Name())
	}
	sort.Strings(names)
	return names
}

// FindBuilder returns the builder registered under name, ignoring case.
func FindBuilder(name string) (Builder, error) {
	for _, b := range registeredBuilders {
		if strings.EqualFold(b.Name(), name) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("no report builder registered for format: %s", name)
}
