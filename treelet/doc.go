// Package treelet implements the treelet subtree collector: given an
// internal node of a core.Tree and a budget M, it greedily grows a
// connected region around that node by repeatedly expanding the
// highest-surface-area boundary subtree, using an intrusive
// array-based max-heap so the hot refinement path allocates nothing
// beyond the caller-sized scratch buffer.
//
// The collector only reads from a tree (through the Source interface,
// which any *core.Tree[L] satisfies) and writes into two
// quicklist.QuickList outputs: internalNodes, the expanded interior,
// and subtrees, the boundary left unexpanded. It never mutates the
// tree itself — rebalancing the collected region is left to the
// caller.
package treelet
