package core

import (
	"math"

	"github.com/katalvlaran/wbvh/aabb"
)

// Insert adds obj to the tree and returns its leaf index, stable for
// the object's lifetime in the tree (Refit keys off it).
//
// Starting at the root, each step picks the child slot whose AABB
// union with obj's box grows least (ties favor the lowest index, so
// an occupied slot wins over a later empty one). An empty slot (-1)
// is filled directly. An occupied leaf slot (<=-2) is split: a fresh
// internal node is created one level down holding the old leaf in
// slot 0 and the new leaf in slot 1, and the parent slot is rewritten
// to point at it. An occupied internal slot (>=0) is descended into,
// and the walk repeats one level deeper.
func (t *Tree[L]) Insert(obj L) int {
	box := obj.GetBoundingBox()
	levelIdx, nodeIdx := 0, 0

	for {
		n := &t.levels[levelIdx].nodes[nodeIdx]

		m := n.childCount + 1
		if m > t.fanOut {
			m = t.fanOut
		}

		bestI := 0
		bestDelta := math.Inf(1)
		var bestMerged aabb.AABB
		for i := 0; i < m; i++ {
			oldVol := math.Max(0, aabb.Volume(n.bounds[i]))
			merged := aabb.Merge(n.bounds[i], box)
			delta := aabb.Volume(merged) - oldVol
			if delta < bestDelta {
				bestDelta = delta
				bestI = i
				bestMerged = merged
			}
		}

		code := n.children[bestI]
		switch {
		case code <= -2:
			oldLeafIdx := decodeLeaf(code)
			oldBox := n.bounds[bestI]

			t.ensureLevel(levelIdx + 1)
			newNodeIdx := t.levels[levelIdx+1].add(newEmptyNode(t.fanOut))
			child := &t.levels[levelIdx+1].nodes[newNodeIdx]

			child.childCount = 2
			child.bounds[0] = oldBox
			child.children[0] = code
			t.leaves[oldLeafIdx].level = levelIdx + 1
			t.leaves[oldLeafIdx].node = newNodeIdx
			t.leaves[oldLeafIdx].child = 0

			newLeafIdx := t.addLeafRecord(obj, levelIdx+1, newNodeIdx, 1)
			child.bounds[1] = box
			child.children[1] = encodeLeaf(newLeafIdx)

			n.children[bestI] = int32(newNodeIdx)
			n.bounds[bestI] = bestMerged

			return newLeafIdx

		case code == -1:
			n.childCount++
			leafIdx := t.addLeafRecord(obj, levelIdx, nodeIdx, bestI)
			n.children[bestI] = encodeLeaf(leafIdx)
			n.bounds[bestI] = bestMerged

			return leafIdx

		default:
			n.bounds[bestI] = bestMerged
			levelIdx++
			nodeIdx = int(code)
		}
	}
}
