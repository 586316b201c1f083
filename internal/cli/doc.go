// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// merges CLI flags over the optional TOML settings file into the
// application's configuration.
package cli
