package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a menu: the title as a
// central circle, one rectangle per option, and an edge labeled with the
// option's trigger pattern. A registered fallback shows as a parallelogram
// reached by a dotted any-input edge.
func GenerateMermaid(title string, options []domain.Option, hasFallback bool) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("    menu((\"%s\"))\n", escapeLabel(title)))

	for i, opt := range options {
		id := fmt.Sprintf("opt_%d", i)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escapeLabel(opt.Name())))
		sb.WriteString(fmt.Sprintf("    menu -- \"%s\" --> %s\n", escapeLabel(opt.Pattern()), id))
	}

	if hasFallback {
		sb.WriteString("    fallback[/\"unknown input\"/]\n")
		sb.WriteString("    menu -. \"*\" .-> fallback\n")
	}

	return sb.String()
}

// escapeLabel makes a string safe inside a quoted Mermaid label.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
