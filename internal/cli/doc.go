// Package cli is responsible for parsing command-line arguments, merging
// them with an optional HCL profile, validating user input, and handling
// process-level concerns like exit codes. It translates CLI flags into the
// run's immutable configuration.
package cli
