// Package quicklist implements a growable sequence whose backing
// storage is always a pool-owned power-of-two-sized array, as used by
// the treelet collector to accumulate subtrees and internalNodes
// without allocating on every Add.
package quicklist
