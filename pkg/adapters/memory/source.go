// Package memory provides a scripted line source for tests and headless
// runs: the in-memory stand-in for a terminal.
package memory

import (
	"context"
	"io"
)

// Source replays a fixed script of input lines, then reports io.EOF. The
// zero value is an exhausted source.
type Source struct {
	lines  []string
	pos    int
	closed bool
}

// NewSource creates a source that delivers the given lines in order.
func NewSource(lines ...string) *Source {
	return &Source{lines: lines}
}

// ReadLine returns the next scripted line. After the script is exhausted,
// or once the source is closed, it returns io.EOF, the same clean end of
// input a real terminal signals.
func (s *Source) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.closed || s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Close marks the source exhausted. Closing twice is harmless.
func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Remaining reports how many scripted lines have not been consumed yet.
// Tests use it to assert exactly how much input an interaction took.
func (s *Source) Remaining() int {
	return len(s.lines) - s.pos
}
