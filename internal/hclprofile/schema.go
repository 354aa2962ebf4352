package hclprofile

import "github.com/hashicorp/hcl/v2"

// fileSchema is the top-level structure of a profile file.
type fileSchema struct {
	Workspace *workspaceBlock `hcl:"workspace,block"`
	Remain    hcl.Body        `hcl:",remain"`
}

// workspaceBlock mirrors the CLI surface. Every attribute is optional in
// the file; nil pointers mean "not set" so the CLI layer can distinguish
// profile values from defaults.
type workspaceBlock struct {
	Output          *string `hcl:"output,optional"`
	Height          *uint64 `hcl:"height,optional"`
	TargetsPerLevel *uint64 `hcl:"targets_per_level,optional"`
	FilesPerTarget  *uint64 `hcl:"files_per_target,optional"`
	Workers         *int    `hcl:"workers,optional"`
	WorkspaceFile   *string `hcl:"workspace_file,optional"`
}

// Profile is the format-agnostic result of loading a profile. Nil fields
// were absent from the file.
type Profile struct {
	Output          *string
	Height          *uint64
	TargetsPerLevel *uint64
	FilesPerTarget  *uint64
	Workers         *int
	WorkspaceFile   *string
}
