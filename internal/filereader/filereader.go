package filereader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/IgorBayerl/linereader/internal/filesystem"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxLineSize is the longest line, in bytes and without its
// terminator, a Reader accepts unless WithMaxLineSize says otherwise.
const DefaultMaxLineSize = 16 * 1024 * 1024

const initialBufferSize = 64 * 1024

// ReadFailure is returned for any problem opening, reading or decoding a file.
type ReadFailure struct {
	Path string
	Err  error
}

func (e *ReadFailure) Error() string {
	return fmt.Sprintf("error reading file: %s: %v", e.Path, e.Err)
}

func (e *ReadFailure) Unwrap() error {
	return e.Err
}

// Result is the single outcome of an asynchronous read.
type Result struct {
	Lines []string
	Err   error
}

// Reader reads text files line by line. The zero value is not usable; use NewReader.
type Reader struct {
	fs          filesystem.Filesystem
	maxLineSize int
}

// Option configures a Reader.
type Option func(*Reader)

// WithFilesystem makes the reader open files through fs instead of the host filesystem.
func WithFilesystem(fs filesystem.Filesystem) Option {
	return func(r *Reader) {
		if fs != nil {
			r.fs = fs
		}
	}
}

// WithMaxLineSize sets the longest line, in bytes and without its terminator,
// the reader accepts. Non-positive values keep DefaultMaxLineSize.
func WithMaxLineSize(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.maxLineSize = n
		}
	}
}

// NewReader creates a Reader backed by the host filesystem unless overridden.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		fs:          filesystem.DefaultFS{},
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultReader = NewReader()

// ReadLines reads all lines from a file using the default reader.
func ReadLines(filePath string) ([]string, error) {
	return defaultReader.ReadLines(filePath)
}

// ReadLinesAsync starts ReadLines on its own goroutine using the default reader.
func ReadLinesAsync(filePath string) <-chan Result {
	return defaultReader.ReadLinesAsync(filePath)
}

// CountLines counts the lines of a file using the default reader.
func CountLines(filePath string) (int, error) {
	return defaultReader.CountLines(filePath)
}

// ReadLines reads all lines from a file and returns them as a slice of strings.
// Both "\n" and "\r\n" end a line and are stripped; a final line without a
// terminator is kept. An empty file yields an empty, non-nil slice.
// A line longer than the reader's max line size (DefaultMaxLineSize unless
// configured) fails the whole read with a ReadFailure wrapping bufio.ErrTooLong.
func (r *Reader) ReadLines(filePath string) ([]string, error) {
	lines := []string{}
	err := r.scan(filePath, func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadLinesAsync runs ReadLines on a new goroutine. The returned channel
// receives exactly one Result and is then closed. It is buffered, so the
// goroutine finishes even if nobody receives.
func (r *Reader) ReadLinesAsync(filePath string) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		lines, err := r.ReadLines(filePath)
		out <- Result{Lines: lines, Err: err}
	}()

	return out
}

// CountLines counts the number of lines in a file without keeping them.
func (r *Reader) CountLines(filePath string) (int, error) {
	lineCount := 0
	err := r.scan(filePath, func(string) {
		lineCount++
	})
	if err != nil {
		return 0, err
	}
	return lineCount, nil
}

func (r *Reader) scan(filePath string, emit func(line string)) error {
	file, err := r.fs.Open(filePath)
	if err != nil {
		return &ReadFailure{Path: filePath, Err: err}
	}
	defer file.Close()

	// Invalid UTF-8 is replaced with U+FFFD rather than rejected.
	var reader io.Reader = transform.NewReader(file, unicode.UTF8.NewDecoder())

	// The buffer also has to hold the "\r\n" after the longest line.
	maxBuffer := r.maxLineSize + 2
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, min(initialBufferSize, maxBuffer)), maxBuffer)
	scanner.Split(scanLines(r.maxLineSize))
	for scanner.Scan() {
		emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return &ReadFailure{Path: filePath, Err: err}
	}
	return nil
}

// scanLines splits on "\n". A "\r" is part of the terminator only when it
// directly precedes the "\n"; anywhere else, end of input included, it is
// line content.
func scanLines(maxLineSize int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line := data[:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			if len(line) > maxLineSize {
				return 0, nil, bufio.ErrTooLong
			}
			return i + 1, line, nil
		}
		if atEOF {
			if len(data) > maxLineSize {
				return 0, nil, bufio.ErrTooLong
			}
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
