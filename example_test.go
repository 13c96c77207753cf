package pergola_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/adapters/memory"
	"github.com/aretw0/pergola/pkg/domain"
)

// ExampleNew demonstrates tag discovery: handlers are exported func fields
// carrying `menu` tags, and the scripted memory source stands in for a
// terminal so the run is deterministic.
func ExampleNew() {
	type actions struct {
		Greet func()      `menu:"g,Say hello"`
		Quit  func() bool `menu:"q,Quit"`
		Huh   func()      `menu:"fallback"`
	}

	a := &actions{
		Greet: func() { fmt.Println("hello!") },
		Quit:  func() bool { fmt.Println("bye"); return true },
		Huh:   func() { fmt.Println("unknown input") },
	}

	// Frames and prompts go to a buffer; only handler output reaches stdout.
	var frames bytes.Buffer
	menu, err := pergola.New("DEMO",
		pergola.WithHandlers(a),
		pergola.WithLineSource(memory.NewSource("g", "nope", "q")),
		pergola.WithWriter(&frames),
		pergola.WithNoClear(),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := menu.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	// Output:
	// hello!
	// unknown input
	// bye
}

// ExampleWithOption shows explicit registration and the typed reader:
// handlers may declare a *pergola.Reader parameter and request typed input.
func ExampleWithOption() {
	var frames bytes.Buffer

	menu, err := pergola.New("CALC",
		pergola.WithOption("Double a number", "d", func(r *pergola.Reader) {
			v, _ := r.Read(context.Background(), domain.KindInt, "")
			if n, ok := v.Int(); ok {
				fmt.Println(2 * n)
			}
		}),
		pergola.WithOption("Quit", "q", func() bool { return true }),
		pergola.WithLineSource(memory.NewSource("d", "21", "q")),
		pergola.WithWriter(&frames),
		pergola.WithNoClear(),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := menu.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	// Output:
	// 42
}

// ExampleWithFallback shows a handler stopping the loop through its
// *domain.RunFlag parameter instead of a boolean return.
func ExampleWithFallback() {
	var frames bytes.Buffer

	menu, err := pergola.New("GUARDED",
		pergola.WithOption("Stop", "s", func(f *domain.RunFlag) {
			fmt.Println("stopping")
			f.Stop()
		}),
		pergola.WithFallback(func() { fmt.Println("try again") }),
		pergola.WithLineSource(memory.NewSource("x", "s")),
		pergola.WithWriter(&frames),
		pergola.WithNoClear(),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := menu.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	// Output:
	// try again
	// stopping
}
