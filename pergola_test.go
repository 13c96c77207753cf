package pergola_test

import (
	"testing"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wellFormedMenu struct {
	Help    func()      `menu:"h,Help"`
	List    func()      `menu:"l,List things"`
	Quit    func() bool `menu:"q,Quit"`
	Unknown func()      `menu:"fallback"`
	helper  func()      // unexported, untagged: invisible to discovery
}

func newWellFormed() *wellFormedMenu {
	return &wellFormedMenu{
		Help:    func() {},
		List:    func() {},
		Quit:    func() bool { return true },
		Unknown: func() {},
		helper:  func() {},
	}
}

func TestNewDiscoversTaggedHandlers(t *testing.T) {
	menu, err := pergola.New("MY COOL CLI APP", pergola.WithHandlers(newWellFormed()))
	require.NoError(t, err)

	opts := menu.Options()
	require.Len(t, opts, 3, "registry size must equal the option-tag count")

	assert.Equal(t, "Help", opts[0].Name())
	assert.Equal(t, "h", opts[0].Pattern())
	assert.Equal(t, "List things", opts[1].Name())
	assert.Equal(t, "l", opts[1].Pattern())
	assert.Equal(t, "Quit", opts[2].Name())
	assert.Equal(t, "q", opts[2].Pattern())

	assert.True(t, menu.HasFallback())
	assert.Equal(t, "MY COOL CLI APP", menu.Title())
}

func TestNewDuplicateFallbackFails(t *testing.T) {
	t.Run("two tagged fields", func(t *testing.T) {
		m := &struct {
			A func() `menu:"fallback"`
			B func() `menu:"fallback"`
		}{A: func() {}, B: func() {}}

		menu, err := pergola.New("BROKEN", pergola.WithHandlers(m))
		assert.ErrorIs(t, err, domain.ErrDuplicateFallback)
		assert.Nil(t, menu, "no menu value may exist after a duplicate fallback")
	})

	t.Run("tag plus explicit option", func(t *testing.T) {
		m := &struct {
			A func() `menu:"fallback"`
		}{A: func() {}}

		menu, err := pergola.New("BROKEN",
			pergola.WithHandlers(m),
			pergola.WithFallback(func() {}),
		)
		assert.ErrorIs(t, err, domain.ErrDuplicateFallback)
		assert.Nil(t, menu)
	})

	t.Run("two explicit options", func(t *testing.T) {
		menu, err := pergola.New("BROKEN",
			pergola.WithFallback(func() {}),
			pergola.WithFallback(func() {}),
		)
		assert.ErrorIs(t, err, domain.ErrDuplicateFallback)
		assert.Nil(t, menu)
	})
}

func TestNewValidatesExplicitOptions(t *testing.T) {
	tests := []struct {
		name    string
		opt     pergola.Option
		wantErr error
	}{
		{"empty name", pergola.WithOption("  ", "h", func() {}), domain.ErrEmptyName},
		{"empty pattern", pergola.WithOption("Help", "", func() {}), domain.ErrEmptyPattern},
		{"nil handler", pergola.WithOption("Help", "h", nil), domain.ErrNilHandler},
		{"two return values", pergola.WithOption("Help", "h", func() (bool, error) { return false, nil }), domain.ErrInvalidReturn},
		{"non-bool return", pergola.WithOption("Help", "h", func() int { return 0 }), domain.ErrInvalidReturn},
		{"bool return plus run flag", pergola.WithOption("Quit", "q", func(*domain.RunFlag) bool { return true }), domain.ErrConflictingSignature},
		{"nil fallback", pergola.WithFallback(nil), domain.ErrNilHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, err := pergola.New("BROKEN", tt.opt)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, menu)
		})
	}
}

func TestNewPreservesRegistrationOrderAcrossSources(t *testing.T) {
	tagged := &struct {
		Mid func() `menu:"m,Mid"`
	}{Mid: func() {}}

	menu, err := pergola.New("ORDERED",
		pergola.WithOption("First", "f", func() {}),
		pergola.WithHandlers(tagged),
		pergola.WithOption("Last", "l", func() {}),
	)
	require.NoError(t, err)

	opts := menu.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, "First", opts[0].Name())
	assert.Equal(t, "Mid", opts[1].Name())
	assert.Equal(t, "Last", opts[2].Name())
}

func TestNewPermitsDuplicatePatterns(t *testing.T) {
	// Colliding trigger patterns are a documented quirk, not a
	// construction error: the first declaration wins at dispatch time.
	menu, err := pergola.New("DUPES",
		pergola.WithOption("First", "x", func() {}),
		pergola.WithOption("Shadowed", "x", func() {}),
	)
	require.NoError(t, err)
	assert.Len(t, menu.Options(), 2)
}
