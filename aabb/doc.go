// Package aabb implements axis-aligned bounding box math: merge, volume,
// the surface-area cost metric used by the treelet heap, and the overlap
// test the wide BVH uses on every query step.
//
// A box's Min/Max are github.com/golang/geo/r3.Vector values. The zero
// box is not a valid empty sentinel — use Empty() instead, so that
// merging any real box into it yields that box untouched.
package aabb
