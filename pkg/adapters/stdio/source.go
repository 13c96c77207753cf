// Package stdio provides the default line source: buffered reads from an
// io.Reader, normally os.Stdin.
package stdio

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
)

// Source reads lines from a wrapped io.Reader. It is the plain,
// non-interactive counterpart of the readline adapter: no editing, no
// history, works on pipes and files.
type Source struct {
	raw    io.Reader
	reader *bufio.Reader
}

// New wraps r in a line source. A nil r defaults to os.Stdin.
func New(r io.Reader) *Source {
	if r == nil {
		r = os.Stdin
	}
	return &Source{
		raw:    r,
		reader: bufio.NewReader(r),
	}
}

// ReadLine blocks until one full line is available and returns it without
// the trailing newline (or carriage return + newline). A final line that
// ends at EOF without a terminator is still delivered; the io.EOF surfaces
// on the following call. A blocked read cannot be interrupted, so ctx is
// only checked before blocking.
func (s *Source) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close closes the wrapped reader when it owns a Close method. os.Stdin is
// never closed: the process, not the menu, owns it.
func (s *Source) Close() error {
	if s.raw == os.Stdin {
		return nil
	}
	if c, ok := s.raw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
