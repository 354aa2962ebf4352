/*
Package nodeid provides the addressing scheme for the synthetic build
graph: a structured, self-contained representation of one node of a
perfect n-ary tree, computed from nothing but a flat global index and the
tree shape.

Index 0 is the synthetic root. Every other index resolves to a node whose
parent is (index-1)/k, so a node's full ancestor chain is reconstructed by
repeated integer division; no parent pointers are stored anywhere. The
chain is ordered nearest-parent-first and includes the root as its final
entry, which makes its length equal the node's depth.

On-disk identity is split in two: the package path encodes only depth
(pkg_1/.../pkg_d), while the library segment encodes which sibling the
node is (lib_<rank>, with rank 1-based within the node's own package).
Addresses are plain values; the package performs no I/O.
*/
package nodeid
