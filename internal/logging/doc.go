// Package logging builds the zap loggers shared by the miniapp and launcher
// commands.
//
// New starts from zap's production config and applies the logging section
// of the config file:
//   - level: debug, info, warn or error. The --verbose flag forces debug.
//   - encoding: json, or console for zap's development encoder (readable
//     timestamps and levels).
//
// Loggers write to stderr unless other sinks are given. The terminal UI owns
// stdout and stderr while it runs, so the ui command passes a file under the
// data directory instead. Callers Sync the logger before exit.
package logging
