package percolation

// forEachOpenNeighbor calls fn for every open orthogonal neighbor of
// (row, col). A single bounds check covers corners, edges and interior.
// Complexity: O(1).
func (g *Grid) forEachOpenNeighbor(row, col int, fn func(r, c int)) {
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.InBounds(r, c) || !g.open[g.cell(r, c)] {
			continue
		}
		fn(r, c)
	}
}
