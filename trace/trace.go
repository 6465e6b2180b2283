// Package trace implements the three-level verbosity sink the learning
// core routes its diagnostics through: a single Log(level, format, args)
// call in place of ad hoc prints, as a level-gated wrapper over a stdlib
// *log.Logger.
package trace

import (
	"io"
	"log"
	"os"
	"sync"
)

// Level is one of the three trace verbosity levels the CLI's --verbose
// count selects among. Level 0 means tracing is off.
type Level int

const (
	// Off disables all trace output.
	Off Level = 0
	// Info covers malformed-record skips and high-level stage transitions.
	Info Level = 1
	// Debug additionally covers finer stage detail, such as the start of
	// OSTIA state merging.
	Debug Level = 2
	// Trace enables every trace line; no call site in this module logs at
	// this level.
	Trace Level = 3
)

// Sink is a level-gated logger: a call at or below the configured level is
// formatted and written, a call above it is skipped without formatting. Safe for concurrent use.
type Sink struct {
	mu     sync.Mutex
	logger *log.Logger
	level  Level
}

// New returns a Sink writing to w, gated at level (0 silences everything).
func New(w io.Writer, level Level) *Sink {
	return &Sink{logger: log.New(w, "", 0), level: level}
}

// NewStderr returns a Sink writing to os.Stderr, the CLI's default trace
// destination (stdout is reserved for the accuracy-line contract).
func NewStderr(level Level) *Sink {
	return New(os.Stderr, level)
}

// Log emits a formatted line if level is within the sink's configured
// verbosity (level <= s.level); otherwise it is a no-op.
func (s *Sink) Log(level Level, format string, args ...interface{}) {
	if s == nil || level > s.level || s.level == Off {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Printf(format, args...)
}

// Level reports the sink's configured verbosity.
func (s *Sink) Level() Level {
	if s == nil {
		return Off
	}
	return s.level
}
