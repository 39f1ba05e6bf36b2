// Package commands defines the miniapp CLI and wires dependencies for subcommands.
//
// Commands
//
//   - ui                  Run the mini app in the terminal against the development host
//   - device set|get|remove|clear|purge
//   - secure set|get|remove|clear|restore|reset-local
//   - location            Request one location sample
//   - fullscreen enter|exit
//
// # Implementation
//
// The root command loads the configuration, builds a logger and the
// dependency graph (stores, host bridge, screen, client) before any
// subcommand runs. One-shot subcommands fill the same inputs and press the
// same buttons as the terminal UI, then print the element the client wrote
// its result to.
package commands
