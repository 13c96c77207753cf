// Package discovery turns a tagged struct into registry entries.
//
// A menu author declares handlers as exported func-typed fields carrying a
// `menu` struct tag and hands a pointer to the struct to the engine. The
// scan runs once at construction; dispatch never reflects over the struct
// again.
package discovery

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/pergola/internal/registry"
	"github.com/aretw0/pergola/pkg/domain"
)

// tagKey is the struct tag inspected on candidate handler fields.
const tagKey = "menu"

// fallbackTag marks the unknown-input handler: `menu:"fallback"`.
const fallbackTag = "fallback"

// Scan inspects the fields declared on *target's struct type and registers
// every tagged handler into reg, preserving field declaration order.
//
// Tag grammar:
//
//	menu:"<pattern>,<displayName>"  – a selectable option
//	menu:"fallback"                 – the unknown-input handler
//
// The pattern is everything before the first comma and the display name is
// everything after it; both are trimmed and must be non-empty. Only fields
// declared on the concrete struct are considered: embedded (anonymous)
// fields are never walked, so a wrapped framework type cannot leak helpers
// into the menu. A tagged field must be exported, func-typed and non-nil.
// A second fallback-tagged field fails with domain.ErrDuplicateFallback.
func Scan(target any, reg *registry.Registry) error {
	if target == nil {
		return domain.ErrNotStruct
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", domain.ErrNotStruct, target)
	}

	elem := v.Elem()
	t := elem.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, tagged := field.Tag.Lookup(tagKey)
		if !tagged || field.Anonymous {
			continue
		}
		if !field.IsExported() {
			return fmt.Errorf("field %s: %w: menu handlers must be exported", field.Name, domain.ErrInvalidTag)
		}
		if field.Type.Kind() != reflect.Func {
			return fmt.Errorf("field %s: %w: menu tag on non-func field %s", field.Name, domain.ErrInvalidTag, field.Type)
		}

		fn := elem.Field(i).Interface()

		if tag == fallbackTag {
			h, err := domain.NewHandler(fn)
			if err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
			if err := reg.SetFallback(h); err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
			continue
		}

		pattern, name, found := strings.Cut(tag, ",")
		if !found {
			return fmt.Errorf("field %s: %w: want \"<pattern>,<name>\" or %q, got %q", field.Name, domain.ErrInvalidTag, fallbackTag, tag)
		}
		opt, err := domain.NewOption(name, pattern, fn)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		reg.Add(opt)
	}

	return nil
}
