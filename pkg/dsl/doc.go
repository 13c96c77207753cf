/*
Package dsl provides a fluent, code-first builder for pergola menus.

It lets developers assemble the option list through chained calls instead of
struct tags or YAML manifests. This is useful for menus generated at
runtime, for tests, and for keeping a small menu in a single expression
with full IDE autocompletion.

Example usage:

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/pergola/pkg/dsl"
	)

	func main() {
		menu, err := dsl.New("MY COOL CLI APP").
			Add("Say hello", "h", func() { fmt.Println("hello!") }).
			Add("Quit", "q", func() bool { return true }).
			Fallback(func() { fmt.Println("unknown input") }).
			Build()
		if err != nil {
			panic(err)
		}
		_ = menu.Run(context.Background())
	}
*/
package dsl
