package nodeid

// Address is the structured identity of a single node in the generated
// build graph. It is a value type: constructed once per emission from the
// node's global index plus the tree shape, and discarded afterwards.
type Address struct {
	// Index is the node's global identifier. 0 is the synthetic root.
	Index uint64

	// Ancestors is the chain from the immediate parent down to the root,
	// nearest-parent-first, root included. Its length equals the node's
	// depth; only the root has an empty chain.
	Ancestors []Address

	// PositionInLevel is the node's 1-based rank among the siblings that
	// share its package. It names the node's library (lib_<rank>). The
	// root has no siblings and carries 0 here.
	PositionInLevel uint64

	// TargetsPerLevel and MaxDepth carry the tree shape so path and name
	// derivation needs no external state.
	TargetsPerLevel uint64
	MaxDepth        uint64
}

// IsRoot reports whether the address is the synthetic root node.
func (a Address) IsRoot() bool {
	return a.Index == 0
}

// Depth is the node's distance from the root.
func (a Address) Depth() uint64 {
	return uint64(len(a.Ancestors))
}

// IsLeaf reports whether the node sits at the maximum depth and therefore
// has no children.
func (a Address) IsLeaf() bool {
	return a.Depth() == a.MaxDepth
}
