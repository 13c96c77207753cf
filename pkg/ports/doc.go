/*
Package ports defines the driven ports (interfaces) for the menu engine.

These interfaces decouple the core loop from its two external collaborators,
allowing input to come from a terminal, a line editor or a scripted buffer,
and screen clearing to be swapped or disabled.

# Key Interfaces

  - LineSource: delivers raw text lines on demand; the engine's only input channel.
  - Prompter: optional capability of sources that draw their own prompt.
  - ScreenClearer: wipes the terminal before each frame is drawn.
*/
package ports
