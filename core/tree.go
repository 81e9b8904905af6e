package core

import (
	"math"

	"github.com/katalvlaran/wbvh/aabb"
)

// Leaf is any object a Tree can store: it must be able to report its
// own world-space bounding box.
type Leaf interface {
	GetBoundingBox() aabb.AABB
}

// Collector receives the leaves a query overlaps, in traversal order.
type Collector[L any] interface {
	Add(L)
}

// node is one wide-fan-out slot array: K bounds and K tri-state child
// codes (-1 empty, >=0 internal child index, <=-2 encoded leaf index).
type node struct {
	childCount int
	bounds     []aabb.AABB
	children   []int32
}

func newEmptyNode(fanOut int) node {
	n := node{
		bounds:   make([]aabb.AABB, fanOut),
		children: make([]int32, fanOut),
	}
	for i := range n.children {
		n.bounds[i] = aabb.Empty()
		n.children[i] = -1
	}
	return n
}

// level is the node arena for one tree depth. count is the number of
// live nodes; len(nodes) is the allocated capacity, doubled on
// overflow by add.
type level struct {
	nodes []node
	count int
}

func newLevel(initialCap int) *level {
	if initialCap < 1 {
		initialCap = 1
	}
	return &level{nodes: make([]node, initialCap)}
}

func (lv *level) add(n node) int {
	if lv.count == len(lv.nodes) {
		newCap := len(lv.nodes) * 2
		if newCap == 0 {
			newCap = 1
		}
		grown := make([]node, newCap)
		copy(grown, lv.nodes[:lv.count])
		lv.nodes = grown
	}
	idx := lv.count
	lv.nodes[idx] = n
	lv.count++

	return idx
}

// leafRecord back-references the node slot that currently owns a leaf,
// so Refit can find its live geometry and Insert can relocate it when
// its slot splits.
type leafRecord[L Leaf] struct {
	obj                L
	level, node, child int
}

// NodeView is a read-only, indexed view of one node's slot arrays —
// the equivalent this package offers in place of raw pointer/offset
// access, since node storage lives in Go slices. Bounds and Children
// alias the node's live slot arrays, but ChildCount is a copy taken by
// NodeAt: do not retain a NodeView across any Insert call, since the
// copied ChildCount goes stale when Insert fills a slot.
type NodeView struct {
	ChildCount int
	Bounds     []aabb.AABB
	Children   []int32
}

// Tree is a wide bounding volume hierarchy with fixed fan-out K over
// leaves of type L.
type Tree[L Leaf] struct {
	fanOut    int
	cfg       Config
	levels    []*level
	leaves    []leafRecord[L]
	leafCount int
	maxDepth  int
}

// New builds an empty tree with the given fan-out. fanOut must be one
// of 2, 4, 8, 16, 32 — New panics otherwise, since fan-out is a
// construction-time constant, not data.
func New[L Leaf](fanOut int, opts ...Option) *Tree[L] {
	switch fanOut {
	case FanOut2, FanOut4, FanOut8, FanOut16, FanOut32:
	default:
		panic("core: fan-out must be one of 2, 4, 8, 16, 32")
	}
	cfg := newConfig(opts...)

	t := &Tree[L]{
		fanOut: fanOut,
		cfg:    cfg,
		leaves: make([]leafRecord[L], 0, cfg.InitialLeafCapacity),
	}
	t.levels = make([]*level, cfg.InitialTreeDepth)
	for d := 0; d < cfg.InitialTreeDepth; d++ {
		t.levels[d] = newLevel(capacityForDepth(fanOut, cfg.InitialLeafCapacity, d))
	}
	t.levels[0].add(newEmptyNode(fanOut))

	return t
}

// FanOut returns the tree's fixed child count per node.
func (t *Tree[L]) FanOut() int { return t.fanOut }

// LeafCount returns the number of leaves inserted so far.
func (t *Tree[L]) LeafCount() int { return t.leafCount }

// Leaf returns the i'th inserted leaf object.
func (t *Tree[L]) Leaf(i int) L { return t.leaves[i].obj }

// LeafBackRef returns the (level, node, child) slot currently owning
// leaf i.
func (t *Tree[L]) LeafBackRef(i int) (lvl, node, child int) {
	r := t.leaves[i]
	return r.level, r.node, r.child
}

// MaxDepth returns the index of the deepest level holding any node.
func (t *Tree[L]) MaxDepth() int { return t.maxDepth }

// NodeAt returns a view of node idx at the given level. See NodeView
// for its aliasing caveat.
func (t *Tree[L]) NodeAt(levelIdx, idx int) NodeView {
	n := &t.levels[levelIdx].nodes[idx]

	return NodeView{ChildCount: n.childCount, Bounds: n.bounds, Children: n.children}
}

func (t *Tree[L]) addLeafRecord(obj L, levelIdx, nodeIdx, childIdx int) int {
	idx := t.leafCount
	t.leaves = append(t.leaves, leafRecord[L]{obj: obj, level: levelIdx, node: nodeIdx, child: childIdx})
	t.leafCount++

	return idx
}

// ensureLevel guarantees the levels slice reaches index d, carrying
// forward the deepest pre-existing level's arena capacity as the
// initial hint for any newly created level, and raises maxDepth to d.
func (t *Tree[L]) ensureLevel(d int) {
	for len(t.levels) <= d {
		capHint := t.cfg.InitialLeafCapacity
		if n := len(t.levels); n > 0 {
			capHint = cap(t.levels[n-1].nodes)
		}
		t.levels = append(t.levels, newLevel(capHint))
	}
	if d > t.maxDepth {
		t.maxDepth = d
	}
}

func encodeLeaf(i int) int32  { return int32(-(i + 2)) }
func decodeLeaf(c int32) int { return int(-c - 2) }

// capacityForDepth returns min(initialLeafCapacity, fanOut^depth),
// clamping the exponent so that fanOut^depth never overflows before
// the comparison.
func capacityForDepth(fanOut, initialLeafCapacity, depth int) int {
	me := maxExponent(fanOut)
	e := depth
	if e > me {
		e = me
	}
	capv := 1
	for i := 0; i < e; i++ {
		capv *= fanOut
		if capv >= initialLeafCapacity {
			capv = initialLeafCapacity
			break
		}
	}
	if capv > initialLeafCapacity {
		capv = initialLeafCapacity
	}
	if capv < 1 {
		capv = 1
	}

	return capv
}

func maxExponent(fanOut int) int {
	return int(math.Log(1e10) / math.Log(float64(fanOut)))
}
