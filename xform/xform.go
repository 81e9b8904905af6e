package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/wbvh/aabb"
)

// Pose is a rigid transform: a rotation followed by a translation.
type Pose struct {
	Orientation mgl64.Quat
	Position    mgl64.Vec3
}

// Identity returns the no-op pose.
func Identity() Pose {
	return Pose{Orientation: mgl64.QuatIdent()}
}

// Matrix builds the 4x4 homogeneous matrix equivalent to p: rotate by
// Orientation, then translate by Position.
func (p Pose) Matrix() mgl64.Mat4 {
	m := p.Orientation.Mat4()
	return mgl64.Translate3D(p.Position[0], p.Position[1], p.Position[2]).Mul4(m)
}

// Transform maps a point through p.
func (p Pose) Transform(pt r3.Vector) r3.Vector {
	v := mgl64.Vec4{pt.X, pt.Y, pt.Z, 1}
	out := p.Matrix().Mul4x1(v)

	return r3.Vector{X: out[0], Y: out[1], Z: out[2]}
}

// TransformAABB maps box through p conservatively: it transforms all
// eight corners and returns their enclosing AABB, which may be larger
// than the original when p carries rotation.
func TransformAABB(p Pose, box aabb.AABB) aabb.AABB {
	corners := [8]r3.Vector{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
	}

	out := aabb.AABB{
		Min: r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, c := range corners {
		w := p.Transform(c)
		out.Min.X = math.Min(out.Min.X, w.X)
		out.Min.Y = math.Min(out.Min.Y, w.Y)
		out.Min.Z = math.Min(out.Min.Z, w.Z)
		out.Max.X = math.Max(out.Max.X, w.X)
		out.Max.Y = math.Max(out.Max.Y, w.Y)
		out.Max.Z = math.Max(out.Max.Z, w.Z)
	}

	return out
}
