// Package config loads the YAML configuration shared by the miniapp and
// launcher commands, applies environment overrides and validates it.
//
// Launcher credentials left at their placeholder values are a configuration
// failure: the launcher must not start with them.
package config
