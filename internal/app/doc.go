// Package app wires application dependencies for the miniapp CLI.
//
// It builds the host loop, the file-backed storage groups, the development
// host bridge, the terminal screen and the client from Config, exposing
// them via the Wire struct for commands to use. Session runs the loop for
// the lifetime of one command.
package app
