/*
Package domain contains the core model of an interactive command menu.

It defines the values the engine and its collaborators exchange: menu
options, typed input results, the loop-control flag, lifecycle events and
the error taxonomy. This package is kept pure and free of I/O, following
Hexagonal Architecture principles; everything here is safe to construct
and inspect without a terminal attached.

# Key Entities

  - Option: one selectable menu entry (display name, trigger pattern, handler).
  - Handler: a validated callable with its resolved parameter and return shape.
  - Value: the tagged result of converting one raw input line to a requested Kind.
  - RunFlag: the mutable cell that decides whether the menu loop keeps running.
  - LifecycleHooks: callbacks for observing renders, dispatches and errors.
*/
package domain
