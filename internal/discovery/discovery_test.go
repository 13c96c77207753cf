package discovery

import (
	"errors"
	"testing"

	"github.com/aretw0/pergola/internal/registry"
	"github.com/aretw0/pergola/pkg/domain"
)

type demoMenu struct {
	Help    func()      `menu:"h,Help"`
	Count   func()      `menu:"c,Count things"`
	Quit    func() bool `menu:"q,Quit"`
	Unknown func()      `menu:"fallback"`
	Plain   func()      // untagged, ignored
}

func TestScan(t *testing.T) {
	m := &demoMenu{
		Help:    func() {},
		Count:   func() {},
		Quit:    func() bool { return true },
		Unknown: func() {},
		Plain:   func() {},
	}

	reg := registry.New()
	if err := Scan(m, reg); err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}

	if reg.Len() != 3 {
		t.Fatalf("registry size = %d, want 3 (one per option tag)", reg.Len())
	}

	opts := reg.Options()
	wantNames := []string{"Help", "Count things", "Quit"}
	wantPatterns := []string{"h", "c", "q"}
	for i, opt := range opts {
		if opt.Name() != wantNames[i] || opt.Pattern() != wantPatterns[i] {
			t.Errorf("option %d = (%s) %s, want (%s) %s",
				i, opt.Pattern(), opt.Name(), wantPatterns[i], wantNames[i])
		}
	}

	if _, ok := reg.Fallback(); !ok {
		t.Error("fallback handler not registered")
	}
	if opts[2].Returns() != domain.ReturnBool {
		t.Errorf("Quit return kind = %v, want bool", opts[2].Returns())
	}
}

func TestScanDisplayNameMayContainCommas(t *testing.T) {
	m := &struct {
		Save func() `menu:"s,Save, then exit"`
	}{Save: func() {}}

	reg := registry.New()
	if err := Scan(m, reg); err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	opt := reg.Options()[0]
	if opt.Pattern() != "s" || opt.Name() != "Save, then exit" {
		t.Errorf("got (%s) %q, want only the first comma to split", opt.Pattern(), opt.Name())
	}
}

func TestScanDuplicateFallback(t *testing.T) {
	m := &struct {
		A func() `menu:"fallback"`
		B func() `menu:"fallback"`
	}{A: func() {}, B: func() {}}

	err := Scan(m, registry.New())
	if !errors.Is(err, domain.ErrDuplicateFallback) {
		t.Errorf("Scan() error = %v, want ErrDuplicateFallback", err)
	}
}

func TestScanRejectsBadTargets(t *testing.T) {
	tests := []struct {
		name   string
		target any
	}{
		{"nil", nil},
		{"non-pointer", struct{}{}},
		{"pointer to non-struct", new(int)},
		{"nil struct pointer", (*demoMenu)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Scan(tt.target, registry.New())
			if !errors.Is(err, domain.ErrNotStruct) {
				t.Errorf("Scan(%v) error = %v, want ErrNotStruct", tt.target, err)
			}
		})
	}
}

func TestScanRejectsMalformedTags(t *testing.T) {
	t.Run("missing comma", func(t *testing.T) {
		m := &struct {
			Help func() `menu:"h"`
		}{Help: func() {}}
		if err := Scan(m, registry.New()); !errors.Is(err, domain.ErrInvalidTag) {
			t.Errorf("error = %v, want ErrInvalidTag", err)
		}
	})

	t.Run("empty pattern", func(t *testing.T) {
		m := &struct {
			Help func() `menu:" ,Help"`
		}{Help: func() {}}
		if err := Scan(m, registry.New()); !errors.Is(err, domain.ErrEmptyPattern) {
			t.Errorf("error = %v, want ErrEmptyPattern", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		m := &struct {
			Help func() `menu:"h, "`
		}{Help: func() {}}
		if err := Scan(m, registry.New()); !errors.Is(err, domain.ErrEmptyName) {
			t.Errorf("error = %v, want ErrEmptyName", err)
		}
	})

	t.Run("tag on non-func field", func(t *testing.T) {
		m := &struct {
			Help string `menu:"h,Help"`
		}{}
		if err := Scan(m, registry.New()); !errors.Is(err, domain.ErrInvalidTag) {
			t.Errorf("error = %v, want ErrInvalidTag", err)
		}
	})

	t.Run("tag on unexported field", func(t *testing.T) {
		m := &struct {
			help func() `menu:"h,Help"`
		}{help: func() {}}
		if err := Scan(m, registry.New()); !errors.Is(err, domain.ErrInvalidTag) {
			t.Errorf("error = %v, want ErrInvalidTag", err)
		}
	})

	t.Run("nil handler field", func(t *testing.T) {
		m := &struct {
			Help func() `menu:"h,Help"`
		}{}
		if err := Scan(m, registry.New()); !errors.Is(err, domain.ErrNilHandler) {
			t.Errorf("error = %v, want ErrNilHandler", err)
		}
	})

	t.Run("conflicting stop channels", func(t *testing.T) {
		m := &struct {
			Quit func(*domain.RunFlag) bool `menu:"q,Quit"`
		}{Quit: func(*domain.RunFlag) bool { return true }}
		if err := Scan(m, registry.New()); !errors.Is(err, domain.ErrConflictingSignature) {
			t.Errorf("error = %v, want ErrConflictingSignature", err)
		}
	})
}

func TestScanSkipsEmbeddedFields(t *testing.T) {
	type base struct {
		Inherited func() `menu:"i,Inherited"`
	}
	m := &struct {
		base
		Own func() `menu:"o,Own"`
	}{
		base: base{Inherited: func() {}},
		Own:  func() {},
	}

	reg := registry.New()
	if err := Scan(m, reg); err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("registry size = %d, want 1 (embedded fields must not be walked)", reg.Len())
	}
	if reg.Options()[0].Name() != "Own" {
		t.Errorf("discovered %q, want Own", reg.Options()[0].Name())
	}
}
