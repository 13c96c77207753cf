package domain

import (
	"fmt"
	"reflect"
	"strings"
)

// ReturnKind classifies how a handler signals loop continuation.
type ReturnKind string

const (
	// ReturnVoid handlers never touch the run flag through their return.
	ReturnVoid ReturnKind = "void"
	// ReturnBool handlers stop the loop by returning true: the engine sets
	// the run flag to the logical negation of the returned value.
	ReturnBool ReturnKind = "bool"
)

var runFlagType = reflect.TypeOf((*RunFlag)(nil))

// Handler is a validated callable with its resolved signature. The parameter
// list and return kind are inspected exactly once, when the handler is
// registered; dispatch never re-examines the function type.
type Handler struct {
	fn      reflect.Value
	params  []reflect.Type
	returns ReturnKind
}

// NewHandler validates fn and resolves its signature. fn must be a non-nil
// function returning nothing or a single bool. A bool-returning function
// that also takes a *RunFlag parameter is rejected: a handler uses exactly
// one of the two stop channels.
func NewHandler(fn any) (Handler, error) {
	if fn == nil {
		return Handler{}, ErrNilHandler
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return Handler{}, fmt.Errorf("%w: got %T", ErrNotFunc, fn)
	}
	if v.IsNil() {
		return Handler{}, ErrNilHandler
	}

	t := v.Type()
	var returns ReturnKind
	switch t.NumOut() {
	case 0:
		returns = ReturnVoid
	case 1:
		if t.Out(0).Kind() != reflect.Bool {
			return Handler{}, fmt.Errorf("%w: returns %s", ErrInvalidReturn, t.Out(0))
		}
		returns = ReturnBool
	default:
		return Handler{}, fmt.Errorf("%w: returns %d values", ErrInvalidReturn, t.NumOut())
	}

	params := make([]reflect.Type, t.NumIn())
	for i := range params {
		params[i] = t.In(i)
	}
	if returns == ReturnBool {
		for _, p := range params {
			if p == runFlagType {
				return Handler{}, ErrConflictingSignature
			}
		}
	}

	return Handler{fn: v, params: params, returns: returns}, nil
}

// IsZero reports whether the handler is unset.
func (h Handler) IsZero() bool {
	return !h.fn.IsValid()
}

// Func returns the callable.
func (h Handler) Func() reflect.Value {
	return h.fn
}

// Params returns the declared parameter types in order.
func (h Handler) Params() []reflect.Type {
	out := make([]reflect.Type, len(h.params))
	copy(out, h.params)
	return out
}

// Returns reports the resolved return kind.
func (h Handler) Returns() ReturnKind {
	return h.returns
}

// Option is one selectable menu entry. Options are immutable: created once
// during discovery (or by a builder) and owned by the registry from then on.
type Option struct {
	Handler

	name    string
	pattern string
}

// NewOption validates and builds an Option. Display name and trigger pattern
// are trimmed and must be non-empty; the handler contract is the one
// enforced by NewHandler.
func NewOption(name, pattern string, fn any) (Option, error) {
	name = strings.TrimSpace(name)
	pattern = strings.TrimSpace(pattern)
	if name == "" {
		return Option{}, ErrEmptyName
	}
	if pattern == "" {
		return Option{}, ErrEmptyPattern
	}
	h, err := NewHandler(fn)
	if err != nil {
		return Option{}, fmt.Errorf("option %q: %w", name, err)
	}
	return Option{Handler: h, name: name, pattern: pattern}, nil
}

// Name returns the display name shown in the rendered menu.
func (o Option) Name() string {
	return o.name
}

// Pattern returns the exact string a user types to select the option.
func (o Option) Pattern() string {
	return o.pattern
}

// Equal reports whether two options share display name, trigger pattern and
// handler identity. Handler identity compares the underlying code pointer,
// so two closures over the same function literal compare equal.
func (o Option) Equal(other Option) bool {
	return o.name == other.name &&
		o.pattern == other.pattern &&
		o.fn.IsValid() == other.fn.IsValid() &&
		(!o.fn.IsValid() || o.fn.Pointer() == other.fn.Pointer())
}

// String renders the option the way the menu does, for logs and errors.
func (o Option) String() string {
	return fmt.Sprintf("(%s) %s", o.pattern, o.name)
}
