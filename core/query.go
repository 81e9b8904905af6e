package core

import "github.com/katalvlaran/wbvh/aabb"

type stackEntry struct {
	level, node int
}

// Query reports every leaf whose stored box intersects box, via an
// explicit stack bounded by (K-1)*maxDepth+1 entries — the worst case
// where every step down pushes K-1 siblings before descending into the
// one that led there.
func (t *Tree[L]) Query(box aabb.AABB, c Collector[L]) {
	capHint := (t.fanOut-1)*t.maxDepth + 1
	stack := make([]stackEntry, 0, capHint)
	stack = append(stack, stackEntry{0, 0})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.levels[top.level].nodes[top.node]
		for i := 0; i < n.childCount; i++ {
			if !aabb.Intersects(box, n.bounds[i]) {
				continue
			}
			code := n.children[i]
			if code >= 0 {
				stack = append(stack, stackEntry{top.level + 1, int(code)})
			} else {
				c.Add(t.leaves[decodeLeaf(code)].obj)
			}
		}
	}
}

// QueryRecursive reports the same leaves as Query, by recursing down
// the call stack instead of an explicit one. It visits children in slot
// order depth-first, so its result order generally differs from Query's. Each node's intersection tests are computed up front
// into a fixed-size array before any recursive call is made, so a
// child's own traversal never reruns a sibling's test.
func (t *Tree[L]) QueryRecursive(box aabb.AABB, c Collector[L]) {
	t.queryRecursive(box, c, 0, 0)
}

func (t *Tree[L]) queryRecursive(box aabb.AABB, c Collector[L], levelIdx, nodeIdx int) {
	n := &t.levels[levelIdx].nodes[nodeIdx]

	var hit [32]bool
	cc := n.childCount
	for i := 0; i < cc; i++ {
		hit[i] = aabb.Intersects(box, n.bounds[i])
	}

	for i := 0; i < cc; i++ {
		if !hit[i] {
			continue
		}
		code := n.children[i]
		if code >= 0 {
			t.queryRecursive(box, c, levelIdx+1, int(code))
		} else {
			c.Add(t.leaves[decodeLeaf(code)].obj)
		}
	}
}
