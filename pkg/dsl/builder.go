package dsl

import (
	"github.com/aretw0/pergola"
)

// Builder accumulates menu registrations for code-first construction.
type Builder struct {
	title string
	opts  []pergola.Option
}

// New creates a builder for a menu with the given title.
func New(title string) *Builder {
	return &Builder{title: title}
}

// Add appends one option. fn follows the same handler contract as
// pergola.WithOption; validation is deferred to Build.
func (b *Builder) Add(name, pattern string, fn any) *Builder {
	b.opts = append(b.opts, pergola.WithOption(name, pattern, fn))
	return b
}

// Fallback registers the unknown-input handler. At most one may be set.
func (b *Builder) Fallback(fn any) *Builder {
	b.opts = append(b.opts, pergola.WithFallback(fn))
	return b
}

// Build compiles the accumulated registrations into a Menu. Extra engine
// options (line source, writer, hooks) are applied after the builder's own,
// so they can override defaults but never reorder the option list.
func (b *Builder) Build(opts ...pergola.Option) (*pergola.Menu, error) {
	all := make([]pergola.Option, 0, len(b.opts)+len(opts))
	all = append(all, b.opts...)
	all = append(all, opts...)
	return pergola.New(b.title, all...)
}
