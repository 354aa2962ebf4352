package hclprofile

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/buildgridgo/internal/fsutil"
)

// Load reads the profile at path, which may be a single .hcl file or a
// directory searched recursively for .hcl files. Exactly one `workspace`
// block must exist across all discovered files.
func Load(path string) (*Profile, error) {
	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile path: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found at %s", path)
	}

	parser := hclparse.NewParser()
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVariables()},
	}

	var found *workspaceBlock
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var schema fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &schema); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}
		if schema.Workspace == nil {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("multiple workspace blocks found under %s; exactly one is allowed", path)
		}
		found = schema.Workspace
	}

	if found == nil {
		return nil, fmt.Errorf("no workspace block found under %s", path)
	}

	return &Profile{
		Output:          found.Output,
		Height:          found.Height,
		TargetsPerLevel: found.TargetsPerLevel,
		FilesPerTarget:  found.FilesPerTarget,
		Workers:         found.Workers,
		WorkspaceFile:   found.WorkspaceFile,
	}, nil
}

// envVariables exposes the process environment as a cty object for use in
// profile expressions.
func envVariables() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			vars[name] = cty.StringVal(value)
		}
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
