// Package render produces the menu prompt text. It is purely functional:
// the engine decides when to clear the screen and write the result.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/pergola/pkg/domain"
)

// UnderlineWeight is the width of the title rule relative to the title: the
// '=' line is exactly twice the title's rune count. It is a documented
// constant so the rule is computed once per frame, never re-derived ad hoc
// on every draw.
const UnderlineWeight = 2

// Prompt is the marker emitted before each blocking read: a blank line,
// then " > " with the cursor resting after it.
const Prompt = "\n > "

// Frame is the rendered menu text for one session. The title, underline and
// option rows are fixed at construction because the option table never
// changes while a session runs; the engine builds one Frame per Run and
// rewrites it each iteration.
type Frame struct {
	text string
}

// NewFrame formats the title, its underline and one row per option:
//
//	\n <title>\n <underline>\n   (<pattern>) <name>\n ...
//
// The prompt marker is not part of the frame; the read step emits it.
func NewFrame(title string, options []domain.Option) *Frame {
	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(title)
	b.WriteString("\n ")
	b.WriteString(Underline(title))
	b.WriteString("\n")

	for _, opt := range options {
		fmt.Fprintf(&b, "   (%s) %s\n", opt.Pattern(), opt.Name())
	}

	return &Frame{text: b.String()}
}

// String returns the frame text.
func (f *Frame) String() string {
	return f.text
}

// Underline returns the '=' rule for a title, UnderlineWeight times the
// title's length in runes.
func Underline(title string) string {
	return strings.Repeat("=", UnderlineWeight*utf8.RuneCountInString(title))
}
