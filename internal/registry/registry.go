// Package registry holds the ordered option table a menu dispatches against.
package registry

import (
	"github.com/aretw0/pergola/pkg/domain"
)

// Registry is the insertion-ordered option table plus the optional
// unknown-input fallback. It is populated during menu construction and
// read-only afterwards; the loop goroutine is its only reader, so lookups
// take no locks.
type Registry struct {
	options  []domain.Option
	fallback domain.Handler
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add appends an option. Insertion order is preserved: it is both the
// render order and the dispatch tie-break for duplicate trigger patterns.
func (r *Registry) Add(opt domain.Option) {
	r.options = append(r.options, opt)
}

// SetFallback binds the unknown-input handler. Binding a second one fails
// with domain.ErrDuplicateFallback.
func (r *Registry) SetFallback(h domain.Handler) error {
	if !r.fallback.IsZero() {
		return domain.ErrDuplicateFallback
	}
	r.fallback = h
	return nil
}

// Match returns the first option whose trigger pattern equals input exactly.
// Later options with the same pattern are unreachable. That is a quirk,
// not an error; `pergola validate` warns about them.
func (r *Registry) Match(input string) (domain.Option, bool) {
	for _, opt := range r.options {
		if opt.Pattern() == input {
			return opt, true
		}
	}
	return domain.Option{}, false
}

// Fallback returns the unknown-input handler; ok is false when none is bound.
func (r *Registry) Fallback() (domain.Handler, bool) {
	return r.fallback, !r.fallback.IsZero()
}

// Options returns the table in insertion order. The slice is a copy; the
// options themselves are immutable.
func (r *Registry) Options() []domain.Option {
	out := make([]domain.Option, len(r.options))
	copy(out, r.options)
	return out
}

// Len reports the number of registered options.
func (r *Registry) Len() int {
	return len(r.options)
}

// DuplicatePatterns returns the trigger patterns bound to more than one
// option, in first-seen order. Validation tooling uses it to warn about
// unreachable entries.
func (r *Registry) DuplicatePatterns() []string {
	seen := make(map[string]int, len(r.options))
	var dups []string
	for _, opt := range r.options {
		seen[opt.Pattern()]++
		if seen[opt.Pattern()] == 2 {
			dups = append(dups, opt.Pattern())
		}
	}
	return dups
}
