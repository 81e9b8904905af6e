package core_test

import (
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/wbvh/aabb"
)

// boxLeaf is the minimal core.Leaf implementation used throughout
// these tests: a fixed box identified by a name for assertions.
type boxLeaf struct {
	name string
	box  aabb.AABB
}

func (b boxLeaf) GetBoundingBox() aabb.AABB { return b.box }

func box(minX, minY, minZ, maxX, maxY, maxZ float64) aabb.AABB {
	return aabb.AABB{
		Min: r3.Vector{X: minX, Y: minY, Z: minZ},
		Max: r3.Vector{X: maxX, Y: maxY, Z: maxZ},
	}
}

// collector gathers query results in traversal order.
type collector struct {
	got []boxLeaf
}

func (c *collector) Add(l boxLeaf) { c.got = append(c.got, l) }

func (c *collector) names() []string {
	out := make([]string, len(c.got))
	for i, l := range c.got {
		out[i] = l.name
	}
	return out
}
