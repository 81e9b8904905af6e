package core

import "github.com/katalvlaran/wbvh/aabb"

// Refit recomputes every internal node's bounds from its children's
// current bounds, after first writing each leaf's live box into its
// owning slot. Call it after leaf geometry has moved and before the
// next Query, or query results against stale bounds are unreliable.
func (t *Tree[L]) Refit() {
	for i := 0; i < t.leafCount; i++ {
		rec := &t.leaves[i]
		t.levels[rec.level].nodes[rec.node].bounds[rec.child] = rec.obj.GetBoundingBox()
	}

	for d := t.maxDepth - 1; d >= 0; d-- {
		parents := t.levels[d]
		children := t.levels[d+1]
		for ni := 0; ni < parents.count; ni++ {
			n := &parents.nodes[ni]
			for ci := 0; ci < n.childCount; ci++ {
				code := n.children[ci]
				if code < 0 {
					continue
				}
				c := &children.nodes[code]
				if c.childCount == 0 {
					continue
				}
				merged := c.bounds[0]
				for j := 1; j < c.childCount; j++ {
					merged = aabb.Merge(merged, c.bounds[j])
				}
				n.bounds[ci] = merged
			}
		}
	}
}
