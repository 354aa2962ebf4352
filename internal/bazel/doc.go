// Package bazel renders and writes the generated workspace: one
// BUILD.bazel plus Objective-C stub source/header pairs per library node,
// the root application BUILD file, and the workspace finalization files
// (WORKSPACE, .bazelversion, entry-point source). All dependency edges are
// derived from nodeid addresses; the package holds no graph state of its
// own.
package bazel
