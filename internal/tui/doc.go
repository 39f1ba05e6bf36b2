// Package tui renders the mini app surface in a terminal.
//
// Screen is the element store the client writes into. It is safe for
// concurrent use: the client writes from the host loop while the bubbletea
// program reads from its own goroutine. Button presses never run on the
// program goroutine; they are posted to the host loop.
//
// Model is the bubbletea program drawing a Screen. It keeps one textinput
// per input element and mirrors edits into the Screen.
package tui
