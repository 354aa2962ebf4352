package nodeid

import (
	"fmt"
	"path"
	"strings"
)

// New resolves a global node index into a full Address by walking the
// parent relation parent = (index-1)/k up to the root. It is a pure
// function of its three inputs: resolving the same index twice yields
// identical paths and names.
func New(index, targetsPerLevel, maxDepth uint64) Address {
	a := Address{
		Index:           index,
		TargetsPerLevel: targetsPerLevel,
		MaxDepth:        maxDepth,
	}
	if index == 0 {
		return a
	}

	for cur := index; ; {
		parent := (cur - 1) / targetsPerLevel
		a.Ancestors = append(a.Ancestors, New(parent, targetsPerLevel, maxDepth))
		if parent == 0 {
			break
		}
		cur = parent
	}

	// Rank within the node's own depth level, re-based to 1. The nodes of
	// depth d occupy the contiguous index range starting right after all
	// nodes of depth <= d-1.
	a.PositionInLevel = 1 + index - NumNodes(targetsPerLevel, a.Depth()-1)
	return a
}

// Children returns the k addresses one level below a, or nil if a is a
// leaf. Child indices are parent.Index*k + i for i in 1..k, the exact
// inverse of the parent relation, so every child re-resolves (via New) to
// the same library path the parent declares for it.
func (a Address) Children() []Address {
	if a.Depth() >= a.MaxDepth {
		return nil
	}

	ancestors := make([]Address, 0, len(a.Ancestors)+1)
	ancestors = append(ancestors, a)
	ancestors = append(ancestors, a.Ancestors...)

	children := make([]Address, 0, a.TargetsPerLevel)
	for i := uint64(1); i <= a.TargetsPerLevel; i++ {
		pos := i
		if !a.IsRoot() {
			pos = a.TargetsPerLevel*(a.PositionInLevel-1) + i
		}
		children = append(children, Address{
			Index:           a.Index*a.TargetsPerLevel + i,
			Ancestors:       ancestors,
			PositionInLevel: pos,
			TargetsPerLevel: a.TargetsPerLevel,
			MaxDepth:        a.MaxDepth,
		})
	}
	return children
}

// PackagePath is the node's package directory relative to the output
// root: one positional segment per depth level, e.g. "pkg_1/pkg_2". The
// segments encode depth only; which sibling the node is lives in the
// library segment.
func (a Address) PackagePath() string {
	segments := make([]string, 0, len(a.Ancestors))
	for i := 1; i <= len(a.Ancestors); i++ {
		segments = append(segments, fmt.Sprintf("pkg_%d", i))
	}
	return strings.Join(segments, "/")
}

// LibPath is the node's library directory relative to the output root.
func (a Address) LibPath() string {
	return path.Join(a.PackagePath(), fmt.Sprintf("lib_%d", a.PositionInLevel))
}

// LibName is the node's fully-qualified module name, e.g. "Pkg1_Pkg2_Lib3".
func (a Address) LibName() string {
	var sb strings.Builder
	for i := 1; i <= len(a.Ancestors); i++ {
		fmt.Fprintf(&sb, "Pkg%d_", i)
	}
	fmt.Fprintf(&sb, "Lib%d", a.PositionInLevel)
	return sb.String()
}

// BuildFilePath is the node's BUILD.bazel location relative to the output
// root.
func (a Address) BuildFilePath() string {
	return path.Join(a.LibPath(), "BUILD.bazel")
}

// String implements fmt.Stringer for log output.
func (a Address) String() string {
	if a.IsRoot() {
		return "//"
	}
	return "//" + a.LibPath()
}

// NumNodes is the total node count of a perfect n-ary tree: the closed
// form (k^(depth+1) - 1) / (k - 1) = 1 + k + k^2 + ... + k^depth. It
// requires k >= 2; configuration validation rejects smaller values before
// any address is built.
func NumNodes(targetsPerLevel, depth uint64) uint64 {
	pow := uint64(1)
	for i := uint64(0); i <= depth; i++ {
		pow *= targetsPerLevel
	}
	return (pow - 1) / (targetsPerLevel - 1)
}
