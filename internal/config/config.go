package config

import (
	"errors"
	"fmt"
)

// DefaultWorkers caps how many node emissions run at once. Each emission
// holds a handful of file handles, so the cap stays in the tens.
const DefaultWorkers = 64

// Config holds every knob for a single generation run. It is immutable once
// validated and is passed by value to the addressing and emission code; no
// process-wide state is involved.
type Config struct {
	// Output is the directory the workspace is generated into. It is wiped
	// and recreated at the start of a run.
	Output string

	// Height is the maximum depth of the build graph; nodes at this depth
	// have no children.
	Height uint64

	// TargetsPerLevel is the branching factor k: every non-leaf node has
	// exactly k children. Must be at least 2 for the closed-form node-count
	// formula (k^(h+1)-1)/(k-1) to be defined.
	TargetsPerLevel uint64

	// FilesPerTarget is the number of header/implementation stub pairs
	// generated for every library target.
	FilesPerTarget uint64

	// WorkspaceFile is the prebuilt workspace-configuration file copied to
	// <Output>/WORKSPACE after generation.
	WorkspaceFile string

	// Workers bounds the number of concurrent node emissions.
	Workers int

	LogFormat string
	LogLevel  string
}

// New validates cfg and returns it unchanged. Validation failures here are
// the "configuration error" class: the run aborts before touching the
// filesystem.
func New(cfg Config) (*Config, error) {
	if cfg.Output == "" {
		return nil, errors.New("output is a required configuration field and cannot be empty")
	}
	if cfg.TargetsPerLevel < 2 {
		// k=1 degenerates to a chain and divides by zero in the node-count
		// closed form; rejected rather than silently special-cased.
		return nil, fmt.Errorf("targets-per-level must be >= 2, got %d", cfg.TargetsPerLevel)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be >= 1, got %d", cfg.Workers)
	}
	return &cfg, nil
}
