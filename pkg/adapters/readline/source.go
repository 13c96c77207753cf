// Package readline adapts the chzyer/readline line editor to the engine's
// LineSource port. Menus running on a real terminal get history, cursor
// editing and Ctrl-C handling without the engine knowing any of it exists.
package readline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/pergola/pkg/ports"
	rl "github.com/chzyer/readline"
)

// Source is a line source backed by a readline instance. It implements
// ports.Prompter, so the engine hands it the prompt instead of printing one.
type Source struct {
	instance *rl.Instance

	mu     sync.Mutex
	closed bool
}

// Option adjusts the underlying readline configuration.
type Option func(*rl.Config)

// WithHistoryFile persists input history across sessions at path.
func WithHistoryFile(path string) Option {
	return func(c *rl.Config) {
		c.HistoryFile = path
	}
}

// New opens a readline-backed source on the process terminal.
func New(opts ...Option) (*Source, error) {
	cfg := &rl.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	instance, err := rl.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("open readline: %w", err)
	}
	return &Source{instance: instance}, nil
}

// SetPrompt hands the prompt text to the line editor, which draws it.
func (s *Source) SetPrompt(prompt string) {
	s.instance.SetPrompt(prompt)
}

type readResult struct {
	line string
	err  error
}

// ReadLine blocks in the line editor until a full line is entered. Ctrl-C
// surfaces as ports.ErrInterrupted and Ctrl-D as io.EOF, both clean stops
// for the engine. Cancelling ctx closes the editor to unblock the pending
// read, so the source is unusable afterwards.
func (s *Source) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan readResult, 1)
	go func() {
		line, err := s.instance.Readline()
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// Closing the instance unblocks the Readline goroutine.
		_ = s.Close()
		return "", ctx.Err()
	case r := <-ch:
		return r.line, mapReadErr(r.err)
	}
}

// mapReadErr translates readline's sentinel errors to the port's. io.EOF
// passes through untouched.
func mapReadErr(err error) error {
	if errors.Is(err, rl.ErrInterrupt) {
		return ports.ErrInterrupted
	}
	return err
}

// Close releases the terminal. Safe to call more than once.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.instance.Close()
}
