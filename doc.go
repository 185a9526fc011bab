// Package percolation estimates the site-percolation threshold of square
// grids by Monte Carlo simulation.
//
// What:
//
//	Sites of an n×n grid are opened one at a time, in uniformly random
//	order, until a chain of open sites links the top row to the bottom
//	row. The fraction of open sites at that moment is one threshold
//	sample; repeating the experiment yields a mean, a standard deviation
//	and a 95% confidence interval (≈ 0.5927 for large n).
//
// Under the hood, everything is organized under three packages:
//
//	unionfind/   — weighted quick-union forest with path halving
//	percolation/ — Grid: open/full/percolates over two forests (no backwash)
//	montecarlo/  — RunTrial, Run and Stats; seeded streams, optional workers
//
// plus the percolation command in cmd/percolation.
//
// Quick ASCII example (3×3, O = open):
//
//	O . .
//	O . .
//	O . O
//
//	percolates through column 1; (3,3) is open but NOT full.
//
//	go run ./cmd/percolation run 200 100
package percolation
