// Package config defines the immutable configuration for a generation run
// and its validation rules. It is the single source of truth for the tree
// shape (height, branching factor, files per target) and is threaded
// explicitly through every addressing and emission call.
package config
