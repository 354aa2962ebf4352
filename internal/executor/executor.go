// Package executor drives the generation run: it fans every node index of
// the requested tree out over a bounded worker pool. Node emissions are
// independent pure functions of (index, config) plus the shared output
// root, so no ordering or coordination exists between them; the only
// policy here is the concurrency cap and fail-fast cancellation.
package executor

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vk/buildgridgo/internal/bazel"
	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/nodeid"
)

// Executor emits every node of the configured tree into the output root.
type Executor struct {
	emitter *bazel.Emitter
	cfg     config.Config
}

// New creates an executor driving the provided emitter.
func New(cfg config.Config, emitter *bazel.Emitter) *Executor {
	return &Executor{
		emitter: emitter,
		cfg:     cfg,
	}
}

// NodeCount is the total number of nodes the configured tree contains,
// including the synthetic root.
func (e *Executor) NodeCount() uint64 {
	return nodeid.NumNodes(e.cfg.TargetsPerLevel, e.cfg.Height)
}

// Run emits all nodes concurrently and returns the first error. A failing
// emission cancels the group context, which stops un-started node indices
// from being scheduled; already-written files are left in place (a partial
// tree is not a recoverable state, the caller aborts the run).
func (e *Executor) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	total := e.NodeCount()
	logger.Info("Starting concurrent emission.", "nodes", total, "workers", e.cfg.Workers)

	g, runCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for index := uint64(0); index < total; index++ {
		if runCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			return e.emitter.EmitNode(runCtx, index)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("emission failed: %w", err)
	}
	// The caller canceling the run is a failure even when no in-flight
	// emission reported one: the tree is incomplete.
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("All nodes emitted.", "nodes", total)
	return nil
}
