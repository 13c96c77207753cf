package ports

import (
	"context"
	"errors"
	"io"
)

// ErrInterrupted is returned by line sources whose read was aborted by the
// user (for example Ctrl-C under a line editor). The engine treats it like
// end of input: the loop stops cleanly.
var ErrInterrupted = errors.New("input interrupted")

// LineSource delivers raw text lines on demand. It is the engine's single
// input collaborator: owned exclusively by one menu, opened at (or injected
// into) construction, and closed exactly once when the run loop exits.
type LineSource interface {
	// ReadLine blocks until one full line is available and returns it
	// without the trailing line terminator. It returns io.EOF when the
	// source is exhausted and ErrInterrupted when the user aborted the
	// read; both end the menu loop cleanly. Implementations that cannot
	// interrupt a blocked read may ignore ctx.
	ReadLine(ctx context.Context) (string, error)

	io.Closer
}

// Prompter is implemented by line sources that draw their own prompt (line
// editors do). When a source implements it, the engine hands the prompt
// text to the source instead of writing it to the output writer, so the
// prompt is not drawn twice.
type Prompter interface {
	SetPrompt(prompt string)
}
