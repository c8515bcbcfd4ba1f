// Package treeflat decomposes arbitrarily nested Go values into a flat leaf
// slice plus a reconstructible structural descriptor, and rebuilds an
// isomorphic value from a descriptor and a replacement leaf slice.
//
// Flattening order is deterministic, a left-to-right depth-first traversal:
//
//	leaves, spec, err := treeflat.Flatten(map[string]any{"b": []any{2, 3}, "a": 1})
//	// leaves: [1, 2, 3]
//	rebuilt, err := treeflat.Unflatten(spec, leaves)
//
// Slices, arrays, maps, structs, and the container package's ordered map,
// default map, deque and record-sequence contracts are traversed as nodes;
// every other value is an opaque leaf. Additional node types are registered
// per namespace with RegisterNode.
//
// The registry and ordering configuration live in a Runtime. The package-level
// functions operate on a shared default Runtime; tests and embedders that need
// isolation construct their own with NewRuntime.
package treeflat
