package bazel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/fsutil"
)

const (
	bazelVersion = "5.0.0.7"

	// entryPointSource is the trivial application entry point the root
	// target compiles. The generated libraries are never actually run.
	entryPointSource = "int main(int, char*[]){return  0;}\n"
)

// Finalize writes the workspace-level files after all nodes have been
// emitted: the WORKSPACE file copied from its prebuilt source, the bazel
// version pin, and the entry-point source consumed by the root target.
func (e *Emitter) Finalize(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Finalizing workspace files.", "workspace_file", e.Cfg.WorkspaceFile)

	if err := fsutil.CopyFile(e.Cfg.WorkspaceFile, filepath.Join(e.Root, "WORKSPACE")); err != nil {
		return fmt.Errorf("failed to install WORKSPACE file: %w", err)
	}

	if err := os.WriteFile(filepath.Join(e.Root, ".bazelversion"), []byte(bazelVersion+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write .bazelversion: %w", err)
	}

	if err := os.WriteFile(filepath.Join(e.Root, "main.m"), []byte(entryPointSource), 0o644); err != nil {
		return fmt.Errorf("failed to write entry point: %w", err)
	}

	logger.Debug("Workspace files finalized.")
	return nil
}
