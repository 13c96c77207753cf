package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Clearer wipes the terminal by spawning the platform clear command:
// "cmd /c cls" on Windows, "clear" everywhere else. Clear blocks until the
// command exits; the engine relies on that to keep frames from interleaving
// with a clear still in flight.
type Clearer struct {
	writer io.Writer
}

// ClearerOption configures a Clearer.
type ClearerOption func(*Clearer)

// WithClearerWriter routes the clear command's output. The wipe happens
// through control sequences on that stream, so it must be the same writer
// the menu frames are drawn to.
func WithClearerWriter(w io.Writer) ClearerOption {
	return func(c *Clearer) {
		c.writer = w
	}
}

// NewClearer creates a screen clearer for the current platform.
func NewClearer(opts ...ClearerOption) *Clearer {
	c := &Clearer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clear runs the platform clear command and waits for it to finish.
func (c *Clearer) Clear(ctx context.Context) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/c", "cls")
	} else {
		cmd = exec.CommandContext(ctx, "clear")
	}
	cmd.Stdout = c.writer

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}
