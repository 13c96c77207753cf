package render

import (
	"strings"
	"testing"

	"github.com/aretw0/pergola/pkg/domain"
)

func mustOption(t *testing.T, name, pattern string) domain.Option {
	t.Helper()
	opt, err := domain.NewOption(name, pattern, func() {})
	if err != nil {
		t.Fatalf("NewOption(%q, %q) failed: %v", name, pattern, err)
	}
	return opt
}

func TestNewFrame(t *testing.T) {
	opts := []domain.Option{
		mustOption(t, "Help", "h"),
		mustOption(t, "Quit", "q"),
	}

	// Title is 15 characters, so the rule is 30 '='.
	frame := NewFrame("MY COOL CLI APP", opts)

	want := "\n MY COOL CLI APP\n" +
		" ==============================\n" +
		"   (h) Help\n" +
		"   (q) Quit\n"
	if got := frame.String(); got != want {
		t.Errorf("frame mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestNewFrameNoOptions(t *testing.T) {
	frame := NewFrame("AB", nil)
	want := "\n AB\n ====\n"
	if got := frame.String(); got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestNewFramePreservesOrder(t *testing.T) {
	opts := []domain.Option{
		mustOption(t, "Zeta", "z"),
		mustOption(t, "Alpha", "a"),
		mustOption(t, "Mid", "m"),
	}
	frame := NewFrame("T", opts)

	text := frame.String()
	z := strings.Index(text, "(z) Zeta")
	a := strings.Index(text, "(a) Alpha")
	m := strings.Index(text, "(m) Mid")
	if z < 0 || a < 0 || m < 0 {
		t.Fatalf("missing option rows in frame:\n%s", text)
	}
	if !(z < a && a < m) {
		t.Errorf("rows not in declaration order: z=%d a=%d m=%d", z, a, m)
	}
}

func TestUnderlineCountsRunes(t *testing.T) {
	// 3 runes, not 6 bytes: the rule must be 6 '=' long.
	if got := Underline("äöü"); got != "======" {
		t.Errorf("Underline(äöü) = %q, want 6 '='", got)
	}
	if got := Underline(""); got != "" {
		t.Errorf("Underline(empty) = %q, want empty", got)
	}
}

func TestPromptMarker(t *testing.T) {
	if Prompt != "\n > " {
		t.Errorf("Prompt = %q", Prompt)
	}
}
