// Package hclprofile loads generation settings from an HCL profile file.
// A profile carries the same knobs as the CLI flags in a single
// `workspace` block, so benchmark shapes can be checked into a repo and
// reused; explicitly-set flags always override profile values. Expressions
// inside a profile may reference the process environment through the `env`
// object, e.g. `workspace_file = "${env.HOME}/GEN_WORKSPACE"`.
package hclprofile
