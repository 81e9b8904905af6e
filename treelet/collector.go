package treelet

import (
	"github.com/katalvlaran/wbvh/aabb"
	"github.com/katalvlaran/wbvh/core"
	"github.com/katalvlaran/wbvh/quicklist"
)

// Source is the minimal node accessor CollectSubtrees needs. Any
// *core.Tree[L] satisfies it regardless of its leaf type, since
// core.NodeAt's signature does not depend on L.
type Source interface {
	NodeAt(level, index int) core.NodeView
}

// NodeRef locates one treelet output entry. Code follows the same
// tri-state convention as a node's child slots: >=0 is an internal
// node index at Level, <=-2 decodes to a leaf index via -(Code+2).
// Pairing Code with Level (rather than a bare index) is necessary here
// because the tree's node storage is one arena per depth: the same
// index value names different nodes at different levels.
type NodeRef struct {
	Level int
	Code  int32
}

// CollectSubtrees grows a connected region around the internal node at
// (rootLevel, rootIndex), bounded by budget m, by repeatedly expanding
// the highest-surface-area boundary subtree. internalNodes receives
// every expanded node (Code always >= 0), with the root itself swapped
// to the last slot on return so a later refinement pass can pop it
// first. subtrees receives every boundary entry left unexpanded — leaf
// refs and any internal node that did not fit the remaining budget.
//
// Returns the summed cost of every node expanded after the root; the
// root's own cost is not included.
//
// Panics if m is less than the root's child count: the budget cannot
// even hold the root's immediate children, a precondition violation.
func CollectSubtrees(src Source, rootLevel, rootIndex, m int, subtrees, internalNodes *quicklist.QuickList[NodeRef]) float64 {
	root := src.NodeAt(rootLevel, rootIndex)
	if m < root.ChildCount {
		panic("treelet: budget M must be at least the root's child count")
	}

	childLevel := rootLevel + 1
	subtreesStart := subtrees.Count()
	heap := NewSubtreeBinaryHeap(m)
	for i := 0; i < root.ChildCount; i++ {
		code := root.Children[i]
		if code >= 0 {
			heap.Push(HeapEntry{Level: childLevel, Index: int(code), Cost: aabb.SurfaceAreaMetric(root.Bounds[i])})
		} else {
			subtrees.Add(NodeRef{Level: childLevel, Code: code})
		}
	}

	rootSlot := internalNodes.Count()
	internalNodes.Add(NodeRef{Level: rootLevel, Code: int32(rootIndex)})

	var treeletCost float64
	remaining := m - heap.Count() - (subtrees.Count() - subtreesStart)

	for heap.Count() > 0 {
		popped := heap.Pop()
		node := src.NodeAt(popped.Level, popped.Index)
		delta := node.ChildCount - 1

		if remaining < delta {
			subtrees.Add(NodeRef{Level: popped.Level, Code: int32(popped.Index)})
			continue
		}

		treeletCost += popped.Cost
		internalNodes.Add(NodeRef{Level: popped.Level, Code: int32(popped.Index)})
		remaining -= delta

		grandchildLevel := popped.Level + 1
		for i := 0; i < node.ChildCount; i++ {
			code := node.Children[i]
			if code >= 0 {
				heap.Push(HeapEntry{Level: grandchildLevel, Index: int(code), Cost: aabb.SurfaceAreaMetric(node.Bounds[i])})
			} else {
				subtrees.Add(NodeRef{Level: grandchildLevel, Code: code})
			}
		}
	}

	last := internalNodes.Count() - 1
	if last != rootSlot {
		a, b := internalNodes.At(rootSlot), internalNodes.At(last)
		internalNodes.Set(rootSlot, b)
		internalNodes.Set(last, a)
	}

	return treeletCost
}
