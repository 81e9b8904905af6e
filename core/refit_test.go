package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wbvh/aabb"
	"github.com/katalvlaran/wbvh/core"
)

// movingLeaf lets a test mutate the box a leaf reports, so Refit has
// something to react to.
type movingLeaf struct {
	box *aabb.AABB
}

func (m movingLeaf) GetBoundingBox() aabb.AABB { return *m.box }

type movingCollector struct {
	got []movingLeaf
}

func (c *movingCollector) Add(l movingLeaf) { c.got = append(c.got, l) }

func TestRefit_PropagatesMovedLeafUpward(t *testing.T) {
	tr := core.New[movingLeaf](core.FanOut4)

	b1 := box(0, 0, 0, 1, 1, 1)
	b2 := box(10, 10, 10, 11, 11, 11)
	tr.Insert(movingLeaf{box: &b1})
	tr.Insert(movingLeaf{box: &b2})

	root := tr.NodeAt(0, 0)
	before := aabb.Merge(root.Bounds[0], root.Bounds[1])

	b1 = box(100, 100, 100, 101, 101, 101)
	tr.Refit()

	root = tr.NodeAt(0, 0)
	after := aabb.Merge(root.Bounds[0], root.Bounds[1])

	assert.NotEqual(t, before, after)
	assert.InDelta(t, 100, root.Bounds[0].Min.X, 1e-9)

	q := box(100, 100, 100, 101, 101, 101)
	var c movingCollector
	tr.Query(q, &c)
	assert.NotEmpty(t, c.got)
}
