package pergola

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/pergola/internal/discovery"
	"github.com/aretw0/pergola/internal/logging"
	"github.com/aretw0/pergola/internal/registry"
	"github.com/aretw0/pergola/pkg/adapters/process"
	"github.com/aretw0/pergola/pkg/adapters/stdio"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/ports"
	"github.com/aretw0/pergola/pkg/reader"
)

// Reader is the typed input reader handlers may declare as a parameter.
// It is an alias for reader.Reader so menu authors only import this package.
type Reader = reader.Reader

// Menu is the high-level entry point of the Pergola library. It owns the
// discovered option table and the collaborators of the run loop: the line
// source, the screen clearer and the output writer.
//
// A Menu is built once and run once: Run closes the input source when the
// loop exits, on every exit path. All construction problems (malformed
// tags, duplicate fallback handlers, invalid signatures) surface from New;
// a Menu that exists is safe to run.
type Menu struct {
	title    string
	registry *registry.Registry

	source  ports.LineSource
	clearer ports.ScreenClearer
	writer  io.Writer
	reader  *reader.Reader
	logger  *slog.Logger
	hooks   domain.LifecycleHooks

	errorPause bool

	registrations []func(*registry.Registry) error
	closeOnce     sync.Once
}

// Option defines a functional option for configuring the Menu.
type Option func(*Menu)

// WithHandlers registers every tagged handler field of target, a pointer to
// a struct whose exported func fields carry `menu` tags:
//
//	type actions struct {
//		Help func()      `menu:"h,Help"`
//		Quit func() bool `menu:"q,Quit"`
//		Huh  func()      `menu:"fallback"`
//	}
//
// Field declaration order becomes menu order. The option may be repeated
// and combined with WithOption and WithFallback; registration follows the
// order the options are applied in.
func WithHandlers(target any) Option {
	return func(m *Menu) {
		m.registrations = append(m.registrations, func(reg *registry.Registry) error {
			return discovery.Scan(target, reg)
		})
	}
}

// WithOption registers one selectable entry explicitly. The handler
// contract is the same as for tagged fields: fn returns nothing or a
// single bool, and may take *domain.RunFlag or *Reader parameters.
func WithOption(name, pattern string, fn any) Option {
	return func(m *Menu) {
		m.registrations = append(m.registrations, func(reg *registry.Registry) error {
			opt, err := domain.NewOption(name, pattern, fn)
			if err != nil {
				return err
			}
			reg.Add(opt)
			return nil
		})
	}
}

// WithFallback registers the unknown-input handler explicitly. A menu may
// carry at most one, counting fallbacks found by WithHandlers.
func WithFallback(fn any) Option {
	return func(m *Menu) {
		m.registrations = append(m.registrations, func(reg *registry.Registry) error {
			h, err := domain.NewHandler(fn)
			if err != nil {
				return fmt.Errorf("fallback handler: %w", err)
			}
			return reg.SetFallback(h)
		})
	}
}

// WithLineSource injects the input collaborator. The menu takes ownership:
// the source is closed when Run exits. Defaults to buffered os.Stdin reads.
func WithLineSource(source ports.LineSource) Option {
	return func(m *Menu) {
		m.source = source
	}
}

// WithScreenClearer injects the clearing collaborator. Defaults to shelling
// out to the platform clear command, wired to the menu writer.
func WithScreenClearer(clearer ports.ScreenClearer) Option {
	return func(m *Menu) {
		m.clearer = clearer
	}
}

// WithNoClear disables screen clearing; frames are appended to the writer.
func WithNoClear() Option {
	return func(m *Menu) {
		m.clearer = nopClearer{}
	}
}

// WithWriter sets the writer frames, prompts and error messages are
// written to (default os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(m *Menu) {
		m.writer = w
	}
}

// WithLogger sets a custom structured logger for the menu.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Menu) {
		m.hooks = hooks
	}
}

// WithErrorPause makes the loop wait for ENTER after showing a runtime
// error, so the message is readable before the next frame wipes it.
func WithErrorPause(pause bool) Option {
	return func(m *Menu) {
		m.errorPause = pause
	}
}

// New builds a Menu with the given title. Handler registration options
// (WithHandlers, WithOption, WithFallback) are applied in order; the first
// invalid registration aborts construction and no Menu is returned.
func New(title string, opts ...Option) (*Menu, error) {
	m := &Menu{
		title:  title,
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	if m.source == nil {
		m.source = stdio.New(nil)
	}
	if m.clearer == nil {
		m.clearer = process.NewClearer(process.WithClearerWriter(m.writer))
	}
	m.reader = reader.New(m.source,
		reader.WithWriter(m.writer),
		reader.WithLogger(m.logger),
	)
	m.logger = m.logger.With("menu", m.title)

	m.registry = registry.New()
	for _, register := range m.registrations {
		if err := register(m.registry); err != nil {
			return nil, err
		}
	}
	m.registrations = nil

	if dups := m.registry.DuplicatePatterns(); len(dups) > 0 {
		m.logger.Warn("duplicate trigger patterns; only the first match is reachable", "patterns", dups)
	}

	return m, nil
}

// Title returns the menu title.
func (m *Menu) Title() string {
	return m.title
}

// Options returns the registered options in menu order.
func (m *Menu) Options() []domain.Option {
	return m.registry.Options()
}

// HasFallback reports whether an unknown-input handler is registered.
func (m *Menu) HasFallback() bool {
	_, ok := m.registry.Fallback()
	return ok
}

// Close releases the input source. It is called automatically when Run
// exits; calling it again, or calling it on a menu that never ran, is
// harmless; the source is closed exactly once either way.
func (m *Menu) Close() error {
	var err error
	m.closeOnce.Do(func() {
		err = m.source.Close()
	})
	return err
}

// nopClearer leaves the screen untouched.
type nopClearer struct{}

func (nopClearer) Clear(context.Context) error { return nil }
