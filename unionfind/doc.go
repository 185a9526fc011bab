// Package unionfind implements a fixed-size disjoint-set forest
// (union–find) over the integer elements [0, n).
//
// What:
//
//   - Weighted quick-union: the smaller tree is always linked under the
//     larger one (union by size).
//   - Path halving in Find: every visited node is re-pointed to its
//     grandparent, flattening the tree as a side effect of queries.
//
// Complexity:
//
//   - New:               O(n) time, O(n) memory.
//   - Find / Union / Connected: amortized O(α(n)), effectively constant.
//   - Size / Count / Len: O(α(n)) / O(1) / O(1).
//
// The forest knows nothing about what its elements represent; callers map
// their own identifiers (grid sites, virtual nodes) onto [0, n).
//
// Concurrency: a *UnionFind is NOT safe for concurrent use; even Find
// mutates parent links.
package unionfind
