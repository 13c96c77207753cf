package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/pergola/internal/presentation/graph"
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

func TestGenerateMermaid(t *testing.T) {
	opts := []domain.Option{
		mustOption(t, "Say hello", "h"),
		mustOption(t, "Quit", "q"),
	}

	got := graph.GenerateMermaid("MY COOL CLI APP", opts, true)

	for _, want := range []string{
		"graph TD",
		`menu(("MY COOL CLI APP"))`,
		`opt_0["Say hello"]`,
		`menu -- "h" --> opt_0`,
		`opt_1["Quit"]`,
		`menu -- "q" --> opt_1`,
		`fallback[/"unknown input"/]`,
		`menu -. "*" .-> fallback`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
		}
	}
}

func TestGenerateMermaidWithoutFallback(t *testing.T) {
	got := graph.GenerateMermaid("BARE", []domain.Option{mustOption(t, "Quit", "q")}, false)

	if strings.Contains(got, "fallback") {
		t.Errorf("GenerateMermaid() rendered a fallback node for a menu without one:\n%v", got)
	}
}

func TestGenerateMermaidEscapesQuotes(t *testing.T) {
	opts := []domain.Option{mustOption(t, `Say "hi"`, "h")}

	got := graph.GenerateMermaid(`The "Menu"`, opts, false)

	for _, want := range []string{
		`menu(("The 'Menu'"))`,
		`opt_0["Say 'hi'"]`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
		}
	}
}
