// Package config loads the optional YAML settings file for the calculator
// and validates it. Command-line flags are applied on top of the result by
// the CLI.
package config
