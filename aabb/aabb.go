package aabb

import (
	"math"

	"github.com/golang/geo/r3"
)

// AABB is an axis-aligned bounding box in R3.
//
// Min.c <= Max.c componentwise holds for any box representing real
// geometry. Empty returns the sentinel used at initialization, for
// which that invariant does not hold by design.
type AABB struct {
	Min, Max r3.Vector
}

// Empty returns the sentinel empty box: Min = (+Inf,+Inf,+Inf),
// Max = (-Inf,-Inf,-Inf). Merging any concrete box into it yields that
// box unchanged.
func Empty() AABB {
	return AABB{
		Min: r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// Merge returns the smallest box containing both a and b.
func Merge(a, b AABB) AABB {
	return AABB{
		Min: r3.Vector{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y), Z: math.Min(a.Min.Z, b.Min.Z)},
		Max: r3.Vector{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y), Z: math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Volume returns (Max-Min).x * (Max-Min).y * (Max-Min).z. It may be
// negative for the empty sentinel; callers that need a non-negative
// cost should clamp with math.Max(0, ...) themselves (the wide BVH's
// insertion heuristic does exactly this).
func Volume(a AABB) float64 {
	d := a.Max.Sub(a.Min)
	return d.X * d.Y * d.Z
}

// SurfaceAreaMetric returns 2*(dx*dy + dy*dz + dz*dx) for a's extent,
// the cost used to order the treelet collector's max-heap.
func SurfaceAreaMetric(a AABB) float64 {
	d := a.Max.Sub(a.Min)
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// Intersects reports whether a and b overlap: componentwise
// a.Min <= b.Max and b.Min <= a.Max.
func Intersects(a, b AABB) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y &&
		a.Min.Z <= b.Max.Z && b.Min.Z <= a.Max.Z
}
