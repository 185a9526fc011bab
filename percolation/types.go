package percolation

import "github.com/katalvlaran/percolation/unionfind"

// topNode is the forest slot of the virtual top node in both forests.
// Sites occupy slots 1..n²; the virtual bottom node takes n²+1 in perc.
const topNode = 0

// neighborOffsets lists the orthogonal (dRow, dCol) steps: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an n×n percolation system. Sites start blocked and only ever
// move to open. Create one with New.
type Grid struct {
	n          int
	open       []bool // row-major, 0-based: open[(row-1)*n + (col-1)]
	openCount  int
	bottomNode int

	// full answers "is this site linked to the top"; it has no bottom node.
	full *unionfind.UnionFind
	// perc answers "is top linked to bottom".
	perc *unionfind.UnionFind
}
