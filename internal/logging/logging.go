package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

var verbosityNames = map[VerbosityLevel]string{
	Verbose: "Verbose",
	Info:    "Info",
	Warning: "Warning",
	Error:   "Error",
	Off:     "Off",
}

func (v VerbosityLevel) String() string {
	if name, ok := verbosityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("VerbosityLevel(%d)", int(v))
}

// ParseVerbosity maps a case-insensitive level name to a VerbosityLevel.
func ParseVerbosity(s string) (VerbosityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return Verbose, nil
	case "info":
		return Info, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "off":
		return Off, nil
	default:
		return Info, fmt.Errorf("invalid verbosity level '%s'. Valid levels are Verbose, Info, Warning, Error, Off", s)
	}
}

// ZerologLevel converts the verbosity to the matching zerolog level.
func (v VerbosityLevel) ZerologLevel() zerolog.Level {
	switch v {
	case Verbose:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warning:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// NewLogger builds a zerolog logger writing to w. With console set, output
// is the human-readable console format; otherwise one JSON object per line.
func NewLogger(w io.Writer, level VerbosityLevel, console bool) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(w).Level(level.ZerologLevel()).With().Timestamp().Logger()
}
