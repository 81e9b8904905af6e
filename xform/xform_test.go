package xform_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wbvh/aabb"
	"github.com/katalvlaran/wbvh/xform"
)

func testBox() aabb.AABB {
	return aabb.AABB{
		Min: r3.Vector{X: -1, Y: -1, Z: -1},
		Max: r3.Vector{X: 1, Y: 1, Z: 1},
	}
}

func TestIdentity_TransformAABB_IsNoOp(t *testing.T) {
	box := testBox()
	got := xform.TransformAABB(xform.Identity(), box)

	assert.InDelta(t, box.Min.X, got.Min.X, 1e-9)
	assert.InDelta(t, box.Min.Y, got.Min.Y, 1e-9)
	assert.InDelta(t, box.Min.Z, got.Min.Z, 1e-9)
	assert.InDelta(t, box.Max.X, got.Max.X, 1e-9)
	assert.InDelta(t, box.Max.Y, got.Max.Y, 1e-9)
	assert.InDelta(t, box.Max.Z, got.Max.Z, 1e-9)
}

func TestTransformAABB_Translation(t *testing.T) {
	box := testBox()
	pose := xform.Pose{Orientation: mgl64.QuatIdent(), Position: mgl64.Vec3{5, 0, 0}}

	got := xform.TransformAABB(pose, box)

	assert.InDelta(t, 4, got.Min.X, 1e-9)
	assert.InDelta(t, 6, got.Max.X, 1e-9)
	assert.InDelta(t, -1, got.Min.Y, 1e-9)
	assert.InDelta(t, 1, got.Max.Y, 1e-9)
}

func TestTransformAABB_RotationEnclosesCorners(t *testing.T) {
	box := testBox()
	// 45-degree rotation about Z should enlarge the X/Y extent of a
	// 2x2x2 cube centered at the origin while leaving Z untouched.
	q := mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 0, 1})
	pose := xform.Pose{Orientation: q}

	got := xform.TransformAABB(pose, box)

	assert.Greater(t, got.Max.X-got.Min.X, box.Max.X-box.Min.X)
	assert.InDelta(t, box.Max.Z-box.Min.Z, got.Max.Z-got.Min.Z, 1e-9)
}

func TestPose_Transform_Point(t *testing.T) {
	pose := xform.Pose{Orientation: mgl64.QuatIdent(), Position: mgl64.Vec3{1, 2, 3}}
	got := pose.Transform(r3.Vector{X: 0, Y: 0, Z: 0})
	assert.InDelta(t, 1, got.X, 1e-9)
	assert.InDelta(t, 2, got.Y, 1e-9)
	assert.InDelta(t, 3, got.Z, 1e-9)
}
