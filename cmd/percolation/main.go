// Command percolation estimates the site-percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
//	percolation run 200 100
//	percolation run --size 200 --trials 100 --workers 8 --seed 42
//	percolation run --config run.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
