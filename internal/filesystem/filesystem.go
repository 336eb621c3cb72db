package filesystem

import (
	"io"
	"os"
	"path/filepath"
)

// Filesystem is the slice of the host filesystem the reader and the CLI need.
// Tests swap in an in-memory implementation.
type Filesystem interface {
	Open(name string) (io.ReadCloser, error)
	Abs(path string) (string, error)
}

// DefaultFS implements the Filesystem interface using the standard `os` and `filepath` packages.
// It represents the real, underlying filesystem of the host operating system.
type DefaultFS struct{}

func (DefaultFS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (DefaultFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}
