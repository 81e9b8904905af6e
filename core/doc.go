// Package core implements the wide bounding volume hierarchy: a BVH
// whose internal nodes have a fixed fan-out (2, 4, 8, 16, or 32)
// rather than the usual binary shape.
//
// Leaves are inserted one at a time with Insert, which walks down from
// the root choosing the child slot whose AABB union with the new leaf
// grows least, splitting an occupied leaf slot into a fresh internal
// node when needed. Refit walks the tree bottom-up, recomputing every
// internal slot's AABB from its children — call it after leaf
// geometry moves, before querying again. Query and QueryRecursive both
// return the same result multiset for the same inputs; Query is an
// explicit-stack traversal, QueryRecursive descends the call stack and
// precomputes a node's intersection tests before recursing into any
// hit child.
//
// Node storage is organized as one arena per tree depth (a "level"),
// not as a tree of heap-allocated nodes, so that insertion, refit, and
// query all index into contiguous slices rather than chasing pointers.
// A child slot's code is tri-state: -1 is empty, a nonnegative value
// is an index into the next level's arena, and a value <= -2 decodes
// to a leaf index via -(code+2).
//
// Tree is not safe for concurrent use: it is a single-writer,
// single-reader structure, and mutating it while a query is in
// progress is undefined, by spec.
package core
