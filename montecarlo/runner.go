package montecarlo

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/percolation"
)

// RunTrial opens uniformly random blocked sites of a fresh n×n grid until
// it percolates and returns NumberOfOpenSites / n².
//
// Each draw takes a row then a column from src.Intn(n); already open sites
// are drawn again. The loop ends with probability 1 since a fully open
// grid always percolates.
//
// Returns ErrInvalidArgument for n ≤ 0 or a nil src, and
// percolation.ErrOutOfRange if src yields values outside [0, n).
func RunTrial(n int, src Source) (float64, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}
	g, err := percolation.New(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	for !g.Percolates() {
		row, col := src.Intn(n)+1, src.Intn(n)+1
		open, err := g.IsOpen(row, col)
		if err != nil {
			return 0, err
		}
		if open {
			continue
		}
		if err := g.Open(row, col); err != nil {
			return 0, err
		}
	}
	return g.OpenFraction(), nil
}

// Run performs trials independent percolation experiments on n×n grids and
// returns their summary statistics.
//
// Returns ErrInvalidArgument if n ≤ 0 or trials ≤ 0, and ErrSharedSource
// if opts.Source is set together with opts.Workers > 1.
//
// Complexity: O(trials·n²·α(n²)) time, O(trials + workers·n²) memory.
func Run(n, trials int, opts Options) (*Stats, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size n=%d must be > 0", ErrInvalidArgument, n)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials=%d must be > 0", ErrInvalidArgument, trials)
	}
	if opts.Source != nil && opts.Workers > 1 {
		return nil, fmt.Errorf("%w: workers=%d", ErrSharedSource, opts.Workers)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Int("n", n), zap.Int("trials", trials))

	thresholds := make([]float64, trials)
	var err error
	switch {
	case opts.Source != nil:
		err = runSequential(n, thresholds, func(int) Source { return opts.Source }, log)
	case opts.Workers <= 1:
		err = runSequential(n, thresholds, func(i int) Source { return trialRNG(opts.Seed, i) }, log)
	default:
		err = runParallel(n, thresholds, opts.Seed, opts.Workers, log)
	}
	if err != nil {
		return nil, err
	}

	st := newStats(n, thresholds)
	log.Info("percolation threshold estimated",
		zap.Float64("mean", st.Mean()),
		zap.Float64("stddev", st.Stddev()),
		zap.Float64("confidence_lo", st.ConfidenceLo()),
		zap.Float64("confidence_hi", st.ConfidenceHi()),
	)
	return st, nil
}

// runSequential fills thresholds in order, drawing trial i from source(i).
func runSequential(n int, thresholds []float64, source func(i int) Source, log *zap.Logger) error {
	for i := range thresholds {
		p, err := RunTrial(n, source(i))
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		thresholds[i] = p
		log.Debug("trial finished", zap.Int("trial", i), zap.Float64("threshold", p))
	}
	return nil
}

// runParallel runs at most workers trials at once. Trial i owns its Grid
// and the stream trialRNG(seed, i), and writes only thresholds[i].
func runParallel(n int, thresholds []float64, seed int64, workers int, log *zap.Logger) error {
	var eg errgroup.Group
	eg.SetLimit(workers)
	log.Debug("starting trial pool", zap.Int("workers", workers))

	for i := range thresholds {
		i := i // per-iteration copy; go directive is < 1.22
		eg.Go(func() error {
			p, err := RunTrial(n, trialRNG(seed, i))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			thresholds[i] = p
			log.Debug("trial finished", zap.Int("trial", i), zap.Float64("threshold", p))
			return nil
		})
	}
	return eg.Wait()
}
