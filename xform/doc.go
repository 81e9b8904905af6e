// Package xform supplies the pose/transform collaborator a caller
// needs to move a leaf's AABB between tree refits: a rigid
// transform (translation plus rotation) and a function that maps an
// AABB through one, conservatively, by transforming its eight corners
// and re-enclosing them.
//
// It deliberately does not implement the full matrix stack (inverse,
// perspective/orthographic projection, the row-vector convention) that
// a complete scene-math library would carry — nothing in this module
// exercises more than composing a rotation and a translation into one
// 4x4 matrix and pushing points through it.
package xform
