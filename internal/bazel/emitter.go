package bazel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/nodeid"
)

// Emitter writes one node's package directory and files under Root. Every
// node owns a disjoint library directory, so emitters for different nodes
// can run concurrently without coordination; only package-directory
// creation overlaps between siblings, and MkdirAll makes that idempotent.
type Emitter struct {
	Root string
	Cfg  config.Config
}

// EmitNode writes the files for a single node index. Index 0 is the
// synthetic root and produces the application BUILD file at the output
// root; every other index produces a library package with its stub pairs.
// Any filesystem error is fatal to the run; there is no rollback.
func (e *Emitter) EmitNode(ctx context.Context, index uint64) error {
	if index == 0 {
		return e.emitRootBuildFile(ctx)
	}
	node := nodeid.New(index, e.Cfg.TargetsPerLevel, e.Cfg.Height)
	return e.emitLibrary(ctx, node)
}

// emitRootBuildFile writes the fixed-shape application target at the
// output root, depending on every depth-1 library.
func (e *Emitter) emitRootBuildFile(ctx context.Context) error {
	ctxlog.FromContext(ctx).Debug("Emitting root build file.")

	deps := make([]string, 0, e.Cfg.TargetsPerLevel)
	for i := uint64(1); i <= e.Cfg.TargetsPerLevel; i++ {
		deps = append(deps, fmt.Sprintf("%q", fmt.Sprintf("//pkg_1/lib_%d", i)))
	}

	content := fmt.Sprintf(`load("@build_bazel_rules_ios//rules:app.bzl", "ios_application")
ios_application(
    name = "root",
    bundle_id = "com.bazel.benchmark",
    families = [
        "iphone",
        "ipad",
    ],
    srcs = ["main.m"],
    minimum_os_version = "15.0",
    deps = [%s],
)
`, strings.Join(deps, ", "))

	target := filepath.Join(e.Root, "BUILD.bazel")
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write root build file: %w", err)
	}
	return nil
}

// emitLibrary writes a library node's directory, BUILD file and stub
// pairs.
func (e *Emitter) emitLibrary(ctx context.Context, node nodeid.Address) error {
	ctxlog.FromContext(ctx).Debug("Emitting library node.", "node", node.String(), "index", node.Index)

	libDir := filepath.Join(e.Root, filepath.FromSlash(node.LibPath()))
	if err := os.MkdirAll(libDir, 0o755); err != nil {
		return fmt.Errorf("failed to create library directory %s: %w", libDir, err)
	}

	if err := e.writeBuildFile(libDir, node); err != nil {
		return err
	}
	return e.writeStubs(libDir, node)
}

// writeBuildFile writes the apple_framework target for a library node.
// The srcs list names exactly the stub pairs writeStubs is about to
// produce; the deps list is exactly the node's children.
func (e *Emitter) writeBuildFile(libDir string, node nodeid.Address) error {
	libName := node.LibName()

	srcs := make([]string, 0, 2*e.Cfg.FilesPerTarget)
	for i := uint64(1); i <= e.Cfg.FilesPerTarget; i++ {
		srcs = append(srcs,
			fmt.Sprintf("%q", fmt.Sprintf("%s_Hdr%d.h", libName, i)),
			fmt.Sprintf("%q", fmt.Sprintf("%s_Src%d.m", libName, i)),
		)
	}

	children := node.Children()
	deps := make([]string, 0, len(children))
	for _, child := range children {
		deps = append(deps, fmt.Sprintf("%q", "//"+child.LibPath()))
	}

	content := fmt.Sprintf(`load("@build_bazel_rules_ios//rules:framework.bzl", "apple_framework")
apple_framework(name = "lib_%d",
    module_name = "%s",
    srcs = [
        %s
    ],
    deps = [
        %s
    ],
    visibility = ["//visibility:public"])
`, node.PositionInLevel, libName, strings.Join(srcs, ", "), strings.Join(deps, ", "))

	target := filepath.Join(libDir, "BUILD.bazel")
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write build file for %s: %w", node.String(), err)
	}
	return nil
}
