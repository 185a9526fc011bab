// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Grid holds n×n sites, each blocked or open, addressed by 1-based
//     (row, col) in [1, n]×[1, n].
//   - Open activates a site and joins it with its open orthogonal
//     neighbors (N, E, S, W).
//   - A site is full when it is open and linked to the top row through a
//     chain of open sites.
//   - The grid percolates when a chain of open sites links the top row to
//     the bottom row.
//
// How:
//
//   - Two disjoint-set forests from package unionfind back the queries:
//     "full" spans the sites plus a virtual top node; "perc" spans the
//     sites plus virtual top and bottom nodes.
//   - Percolates asks "perc" whether top and bottom are joined.
//   - IsFull asks "full", which never sees the bottom node. Asking "perc"
//     instead would report bottom-row sites full as soon as the system
//     percolates anywhere (backwash).
//
// Complexity:
//
//   - New:                 O(n²) time and memory.
//   - Open:                amortized O(α(n²)).
//   - IsOpen:              O(1).
//   - IsFull, Percolates:  amortized O(α(n²)).
//   - NumberOfOpenSites:   O(1).
//
// Errors:
//
//   - ErrInvalidArgument: side length n ≤ 0.
//   - ErrOutOfRange: row or col outside [1, n].
//
// Concurrency: a *Grid is NOT safe for concurrent use. Each Monte Carlo
// trial owns its own Grid.
package percolation
