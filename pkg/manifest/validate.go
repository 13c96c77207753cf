package manifest

import (
	"fmt"
	"strings"
)

// Severity classifies a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem is one validation finding, tied to a manifest path such as
// "options[2].pattern".
type Problem struct {
	Severity Severity
	Path     string
	Message  string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s: %s", p.Severity, p.Path, p.Message)
}

// Problems is a validation report.
type Problems []Problem

// HasErrors reports whether the report contains at least one error.
// Warnings alone leave the manifest runnable.
func (ps Problems) HasErrors() bool {
	for _, p := range ps {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks the manifest's structural rules. Errors mean the manifest
// cannot build a menu; warnings flag suspicious but legal declarations,
// like a duplicate trigger pattern that shadows a later entry.
func (f *File) Validate() Problems {
	var ps Problems

	if strings.TrimSpace(f.Title) == "" {
		ps = append(ps, Problem{SeverityWarning, "title", "title is empty"})
	}
	if len(f.Options) == 0 {
		ps = append(ps, Problem{SeverityWarning, "options", "manifest declares no options"})
	}

	seen := make(map[string]int)
	for i, e := range f.Options {
		path := fmt.Sprintf("options[%d]", i)

		if strings.TrimSpace(e.Name) == "" {
			ps = append(ps, Problem{SeverityError, path + ".name", "option name must not be empty"})
		}
		if strings.TrimSpace(e.Pattern) == "" {
			ps = append(ps, Problem{SeverityError, path + ".pattern", "trigger pattern must not be empty"})
		} else if prev, dup := seen[e.Pattern]; dup {
			ps = append(ps, Problem{
				SeverityWarning,
				path + ".pattern",
				fmt.Sprintf("pattern %q already used by options[%d]; this entry is unreachable", e.Pattern, prev),
			})
		} else {
			seen[e.Pattern] = i
		}

		if _, err := decodeAction(e.Action); err != nil {
			ps = append(ps, Problem{SeverityError, path + ".action", err.Error()})
		}
	}

	if f.Fallback != nil {
		if _, err := decodeAction(f.Fallback.Action); err != nil {
			ps = append(ps, Problem{SeverityError, "fallback.action", err.Error()})
		}
	}

	return ps
}
