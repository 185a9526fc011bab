package percolation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/percolation/percolation"
)

// GridSuite exercises Grid construction, opening and the open/full queries.
type GridSuite struct {
	suite.Suite
}

// mustNew builds an n×n grid or fails the test.
func (s *GridSuite) mustNew(n int) *percolation.Grid {
	g, err := percolation.New(n)
	require.NoError(s.T(), err)
	return g
}

// mustOpen opens every listed (row, col) pair or fails the test.
func (s *GridSuite) mustOpen(g *percolation.Grid, sites ...[2]int) {
	for _, rc := range sites {
		require.NoError(s.T(), g.Open(rc[0], rc[1]), "Open(%d,%d)", rc[0], rc[1])
	}
}

func (s *GridSuite) isFull(g *percolation.Grid, row, col int) bool {
	full, err := g.IsFull(row, col)
	require.NoError(s.T(), err)
	return full
}

func (s *GridSuite) isOpen(g *percolation.Grid, row, col int) bool {
	open, err := g.IsOpen(row, col)
	require.NoError(s.T(), err)
	return open
}

// TestFreshGrid verifies a new grid has no open sites and does not percolate.
func (s *GridSuite) TestFreshGrid() {
	for _, n := range []int{1, 2, 3, 10} {
		g := s.mustNew(n)
		s.Equal(n, g.Size())
		s.Equal(n*n, g.Sites())
		s.Equal(0, g.NumberOfOpenSites(), "n=%d", n)
		s.False(g.Percolates(), "n=%d", n)
		s.Zero(g.OpenFraction())
		for row := 1; row <= n; row++ {
			for col := 1; col <= n; col++ {
				s.False(s.isOpen(g, row, col))
				s.False(s.isFull(g, row, col))
			}
		}
	}
}

// TestOpen_Idempotent checks that a second Open of the same site changes nothing.
func (s *GridSuite) TestOpen_Idempotent() {
	g := s.mustNew(3)
	s.mustOpen(g, [2]int{2, 2})
	s.Equal(1, g.NumberOfOpenSites())

	s.mustOpen(g, [2]int{2, 2})
	s.Equal(1, g.NumberOfOpenSites())
	s.True(s.isOpen(g, 2, 2))
	s.False(s.isFull(g, 2, 2))
	s.False(g.Percolates())
}

// TestIsOpen_BeforeAndAfter checks IsOpen flips exactly on the opened site.
func (s *GridSuite) TestIsOpen_BeforeAndAfter() {
	const n = 4
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			g := s.mustNew(n)
			s.False(s.isOpen(g, row, col))
			s.mustOpen(g, [2]int{row, col})
			s.True(s.isOpen(g, row, col))
			s.Equal(1, g.NumberOfOpenSites())
		}
	}
}

// TestTopRowFullOnOpen checks that every row-1 site is full as soon as it opens.
func (s *GridSuite) TestTopRowFullOnOpen() {
	g := s.mustNew(5)
	for col := 1; col <= 5; col++ {
		s.mustOpen(g, [2]int{1, col})
		s.True(s.isFull(g, 1, col), "col=%d", col)
	}
	s.False(g.Percolates())
}

// TestFullPropagatesDown opens a vertical column and checks fullness flows
// down and the grid percolates only when the column reaches row n.
func (s *GridSuite) TestFullPropagatesDown() {
	g := s.mustNew(4)
	s.mustOpen(g, [2]int{3, 2}, [2]int{2, 2})
	s.False(s.isFull(g, 2, 2), "not yet linked to the top")

	s.mustOpen(g, [2]int{1, 2})
	s.True(s.isFull(g, 2, 2))
	s.True(s.isFull(g, 3, 2))
	s.False(g.Percolates())

	s.mustOpen(g, [2]int{4, 2})
	s.True(g.Percolates())
	s.True(s.isFull(g, 4, 2))
	s.Equal(4, g.NumberOfOpenSites())
	s.InDelta(0.25, g.OpenFraction(), 1e-12)
}

// TestBackwash is the canonical regression: in a 3×3 grid with column 1
// open top to bottom and an isolated open site at (3,3), the grid
// percolates but (3,3) must not be reported full.
//
//	O . .
//	O . .
//	O . O
func (s *GridSuite) TestBackwash() {
	g := s.mustNew(3)
	s.mustOpen(g, [2]int{3, 3})
	s.mustOpen(g, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1})

	s.True(g.Percolates())
	s.True(s.isFull(g, 3, 1))
	s.True(s.isOpen(g, 3, 3))
	s.False(s.isFull(g, 3, 3), "backwash: isolated bottom site reported full")

	// Joining the isolated site to the path makes it genuinely full.
	s.mustOpen(g, [2]int{3, 2})
	s.True(s.isFull(g, 3, 3))
}

// TestSingleSiteGrid covers the degenerate 1×1 grid.
func (s *GridSuite) TestSingleSiteGrid() {
	g := s.mustNew(1)
	s.False(g.Percolates())
	s.False(s.isFull(g, 1, 1))

	s.mustOpen(g, [2]int{1, 1})
	s.True(g.Percolates())
	s.True(s.isFull(g, 1, 1))
	s.Equal(1, g.NumberOfOpenSites())
	s.Equal(1.0, g.OpenFraction())
}

// TestCornersAndEdges opens the four corners of a 3×3 grid; none of them
// is adjacent to another, so only the top corners are full.
func (s *GridSuite) TestCornersAndEdges() {
	g := s.mustNew(3)
	s.mustOpen(g, [2]int{1, 1}, [2]int{1, 3}, [2]int{3, 1}, [2]int{3, 3})
	s.True(s.isFull(g, 1, 1))
	s.True(s.isFull(g, 1, 3))
	s.False(s.isFull(g, 3, 1))
	s.False(s.isFull(g, 3, 3))
	s.False(g.Percolates())

	// The middle of the right edge links (1,3) down to (3,3).
	s.mustOpen(g, [2]int{2, 3})
	s.True(s.isFull(g, 3, 3))
	s.True(g.Percolates())
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

// TestNew_InvalidArgument verifies New rejects non-positive sizes.
func TestNew_InvalidArgument(t *testing.T) {
	for _, n := range []int{0, -1, -3} {
		g, err := percolation.New(n)
		if !errors.Is(err, percolation.ErrInvalidArgument) {
			t.Errorf("New(%d) error = %v; want ErrInvalidArgument", n, err)
		}
		if g != nil {
			t.Errorf("New(%d) returned non-nil grid", n)
		}
	}
}

// TestOutOfRange verifies every coordinate-taking method rejects 0, n+1 and
// negative indices in either position.
func TestOutOfRange(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		g, err := percolation.New(n)
		require.NoError(t, err)

		bad := [][2]int{
			{0, 1}, {1, 0}, {n + 1, 1}, {1, n + 1},
			{-1, 1}, {1, -1}, {-5, -5}, {0, 0},
		}
		for _, rc := range bad {
			row, col := rc[0], rc[1]

			err := g.Open(row, col)
			require.ErrorIs(t, err, percolation.ErrOutOfRange, "n=%d Open(%d,%d)", n, row, col)

			_, err = g.IsOpen(row, col)
			require.ErrorIs(t, err, percolation.ErrOutOfRange, "n=%d IsOpen(%d,%d)", n, row, col)

			_, err = g.IsFull(row, col)
			require.ErrorIs(t, err, percolation.ErrOutOfRange, "n=%d IsFull(%d,%d)", n, row, col)
		}
		require.Equal(t, 0, g.NumberOfOpenSites(), "failed calls must not change state")
	}
}
