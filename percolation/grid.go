package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New returns an n×n grid with every site blocked.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidArgument, n)
	}
	sites := n * n
	return &Grid{
		n:          n,
		open:       make([]bool, sites),
		bottomNode: sites + 1,
		full:       unionfind.New(sites + 1),
		perc:       unionfind.New(sites + 2),
	}, nil
}

// Size returns the side length n.
func (g *Grid) Size() int {
	return g.n
}

// Sites returns the total number of sites, n².
func (g *Grid) Sites() int {
	return g.n * g.n
}

// InBounds reports whether (row, col) lies in [1, n]×[1, n].
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// Open opens site (row, col) and joins it with its open neighbors.
// Opening an already open site is a no-op.
// Returns ErrOutOfRange for coordinates outside the grid.
//
// Row 1 sites join the virtual top node in both forests; row n sites join
// the virtual bottom node in perc only. For n == 1 the single site is in
// both rows and therefore joins top and bottom.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	i := g.cell(row, col)
	if g.open[i] {
		return nil
	}
	g.open[i] = true
	g.openCount++

	site := g.node(row, col)
	g.forEachOpenNeighbor(row, col, func(r, c int) {
		other := g.node(r, c)
		g.full.Union(site, other)
		g.perc.Union(site, other)
	})
	if row == 1 {
		g.full.Union(site, topNode)
		g.perc.Union(site, topNode)
	}
	if row == g.n {
		g.perc.Union(site, g.bottomNode)
	}
	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	return g.open[g.cell(row, col)], nil
}

// IsFull reports whether site (row, col) is open and linked to the top row
// through open sites. Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	if !g.open[g.cell(row, col)] {
		return false, nil
	}
	return g.full.Connected(topNode, g.node(row, col)), nil
}

// NumberOfOpenSites returns the number of open sites.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// OpenFraction returns NumberOfOpenSites / n².
func (g *Grid) OpenFraction() float64 {
	return float64(g.openCount) / float64(g.Sites())
}

// Percolates reports whether the top row is linked to the bottom row.
func (g *Grid) Percolates() bool {
	return g.perc.Connected(topNode, g.bottomNode)
}

func (g *Grid) validate(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) not in [1,%d]×[1,%d]", ErrOutOfRange, row, col, g.n, g.n)
	}
	return nil
}

// cell maps (row, col) to its 0-based index in the open slice.
func (g *Grid) cell(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

// node maps (row, col) to its forest slot: n*(row-1) + col, in 1..n².
func (g *Grid) node(row, col int) int {
	return g.n*(row-1) + col
}
