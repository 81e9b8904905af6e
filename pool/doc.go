// Package pool implements a power-of-two-sized array cache keyed by
// size exponent, with LIFO reuse. It backs quicklist. The wide BVH's
// level and leaf arenas in package core do not use it; they allocate
// their own slices.
//
// Pool is not safe for concurrent use.
package pool
