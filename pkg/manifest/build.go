package manifest

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/adapters/process"
	"github.com/aretw0/pergola/pkg/domain"
)

// A BuildOption adjusts how manifest entries become menu handlers.
type BuildOption func(*builder)

type builder struct {
	writer   io.Writer
	renderer func(string) (string, error)
	runner   *process.Runner
	pause    bool
	menuOpts []pergola.Option
}

// WithOutput routes handler output and menu frames to w (default os.Stdout).
func WithOutput(w io.Writer) BuildOption {
	return func(b *builder) {
		b.writer = w
	}
}

// WithRenderer post-processes message actions before they are printed,
// typically a markdown renderer. A render failure falls back to the raw
// message text.
func WithRenderer(render func(string) (string, error)) BuildOption {
	return func(b *builder) {
		b.renderer = render
	}
}

// WithRunner sets the process runner exec actions go through. Defaults to a
// runner streaming into the build writer.
func WithRunner(r *process.Runner) BuildOption {
	return func(b *builder) {
		b.runner = r
	}
}

// WithPause makes message and exec handlers wait for ENTER before the next
// frame wipes their output. Interactive sessions want this; headless runs
// must not block on it.
func WithPause(pause bool) BuildOption {
	return func(b *builder) {
		b.pause = pause
	}
}

// WithMenuOptions appends engine options (line source, logger, hooks) to
// the built menu. They are applied after the manifest's own, so they may
// override its writer or clearer.
func WithMenuOptions(opts ...pergola.Option) BuildOption {
	return func(b *builder) {
		b.menuOpts = append(b.menuOpts, opts...)
	}
}

// Menu compiles the manifest into a runnable menu. Every entry's action is
// decoded here, so a manifest that passes Validate builds cleanly.
func (f *File) Menu(opts ...BuildOption) (*pergola.Menu, error) {
	b := &builder{writer: os.Stdout}
	for _, opt := range opts {
		opt(b)
	}
	if b.runner == nil {
		b.runner = process.NewRunner(
			process.WithStdout(b.writer),
			process.WithStderr(b.writer),
		)
	}

	menuOpts := []pergola.Option{pergola.WithWriter(b.writer)}
	for i, e := range f.Options {
		fn, err := b.handler(e)
		if err != nil {
			return nil, fmt.Errorf("options[%d] (%s): %w", i, e.Name, err)
		}
		menuOpts = append(menuOpts, pergola.WithOption(e.Name, e.Pattern, fn))
	}
	if f.Fallback != nil {
		fn, err := b.handler(*f.Fallback)
		if err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
		menuOpts = append(menuOpts, pergola.WithFallback(fn))
	}
	menuOpts = append(menuOpts, b.menuOpts...)

	return pergola.New(f.Title, menuOpts...)
}

// handler turns one entry's action into a handler function.
func (b *builder) handler(e Entry) (any, error) {
	action, err := decodeAction(e.Action)
	if err != nil {
		return nil, err
	}

	switch {
	case action.Quit:
		return func() bool { return true }, nil

	case action.Exec != nil:
		cmd := action.Exec
		return b.pausing(func() {
			// Exec failures are shown, not raised: a broken command must
			// not take the menu down.
			if err := b.runner.Run(context.Background(), cmd.Command, cmd.Args...); err != nil {
				fmt.Fprintf(b.writer, "\n Error: %v\n", err)
			}
		}), nil

	default:
		msg := action.Message
		return b.pausing(func() {
			b.print(msg)
		}), nil
	}
}

// pausing wraps run so its output stays on screen until ENTER. The *Reader
// parameter makes the engine hand the handler its own input source.
func (b *builder) pausing(run func()) any {
	if !b.pause {
		return run
	}
	return func(r *pergola.Reader) {
		run()
		_, _ = r.Read(context.Background(), domain.KindText, "\n[enter to continue] ")
	}
}

func (b *builder) print(msg string) {
	text := msg
	if b.renderer != nil {
		if rendered, err := b.renderer(msg); err == nil {
			text = rendered
		}
	}
	fmt.Fprintln(b.writer, strings.TrimSpace(text))
}
