/*
Package pergola turns a set of tagged handler functions into an interactive,
text-driven command menu: it discovers handlers, renders a prompt listing
them, reads a line of input, matches it against each handler's trigger
pattern, invokes the matching handler, and loops until a handler signals
termination.

# Concept

A menu is declared, not assembled: handlers are exported func fields on a
plain struct, tagged with their trigger pattern and display name. Discovery
runs once at construction and caches everything; dispatch never reflects
over the struct again. The run loop owns a single run flag; handlers stop
the menu either by returning true from a bool-returning handler, or by
flipping a *domain.RunFlag parameter they declared. The two channels are
mutually exclusive per handler and validated at construction.

# Key Features

  - Tag discovery or explicit registration: `menu:"<pattern>,<name>"` struct
    tags, WithOption/WithFallback constructor options, or the pkg/dsl builder.
  - Typed input: handlers may take a *pergola.Reader and request ints,
    floats, big integers, arbitrary-precision decimals, booleans or text;
    malformed input yields a distinguishable "none" value, never an error.
  - Fail-fast construction: duplicate fallback handlers, malformed tags and
    invalid signatures abort New; a menu that exists is safe to run.
  - Resilient loop: handler panics, unsupported parameter types and I/O
    hiccups are reported and the loop continues; end of input stops it
    cleanly.
  - Hexagonal collaborators: the line source and the screen clearer are
    ports (see pkg/ports), so input can come from a terminal, a line editor
    (pkg/adapters/readline) or a scripted buffer (pkg/adapters/memory).

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/pergola"
		"github.com/aretw0/pergola/pkg/domain"
	)

	type actions struct {
		Greet func()                `menu:"g,Say hello"`
		Count func(*pergola.Reader) `menu:"c,Count to a number"`
		Quit  func() bool           `menu:"q,Quit"`
		Huh   func()                `menu:"fallback"`
	}

	func main() {
		a := &actions{
			Greet: func() { fmt.Println("hello!") },
			Count: func(r *pergola.Reader) {
				v, _ := r.Read(context.Background(), domain.KindInt, "up to: ")
				if n, ok := v.Int(); ok {
					for i := 1; i <= n; i++ {
						fmt.Println(i)
					}
				}
			},
			Quit: func() bool { return true },
			Huh:  func() { fmt.Println("unknown input") },
		}

		menu, err := pergola.New("MY COOL CLI APP", pergola.WithHandlers(a))
		if err != nil {
			log.Fatal(err)
		}
		if err := menu.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}

Menus can also be described in YAML manifests (pkg/manifest) and run with
the pergola CLI (cmd/pergola).
*/
package pergola
