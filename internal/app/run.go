package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/buildgridgo/internal/bazel"
	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/executor"
	"github.com/vk/buildgridgo/internal/fsutil"
)

// Run executes a full generation: wipe and recreate the output root, emit
// every node of the tree over the worker pool, then install the
// workspace-level files. Any failure aborts the run; a partially written
// tree is left behind for inspection but is not a supported state.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	start := time.Now()

	a.logger.Info("Preparing output directory.", "output", a.cfg.Output)
	if err := fsutil.EnsureCleanDir(a.cfg.Output); err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}

	emitter := &bazel.Emitter{Root: a.cfg.Output, Cfg: a.cfg}
	exec := executor.New(a.cfg, emitter)

	a.logger.Info("🚀 Starting workspace generation...",
		"height", a.cfg.Height,
		"targets_per_level", a.cfg.TargetsPerLevel,
		"files_per_target", a.cfg.FilesPerTarget,
		"nodes", exec.NodeCount(),
	)
	if err := exec.Run(ctx); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := emitter.Finalize(ctx); err != nil {
		return fmt.Errorf("workspace finalization failed: %w", err)
	}

	a.logger.Info("🏁 Workspace generated.", "nodes", exec.NodeCount(), "elapsed", time.Since(start).String())
	a.logger.Debug("App.Run method finished.")
	return nil
}
