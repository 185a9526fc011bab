package montecarlo

import "go.uber.org/zap"

// z95 is the two-sided 95% standard normal quantile.
const z95 = 1.96

// Source yields uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Options configures Run.
type Options struct {
	// Seed selects the deterministic random streams; 0 means defaultSeed.
	// Ignored when Source is set.
	Seed int64
	// Source, if non-nil, feeds every trial in order. Requires Workers <= 1.
	Source Source
	// Workers bounds the number of trials running at once; <= 1 is sequential.
	Workers int
	// Logger receives trial progress (Debug) and the summary (Info).
	// Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns sequential, default-seeded, silent options.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// Stats holds the threshold samples of a completed Run and their summary.
// All values are fixed at construction.
type Stats struct {
	n          int
	thresholds []float64
	mean       float64
	stddev     float64
	lo, hi     float64
}

// N returns the grid side length the trials ran on.
func (s *Stats) N() int { return s.n }

// Trials returns the number of samples.
func (s *Stats) Trials() int { return len(s.thresholds) }

// Thresholds returns a copy of the per-trial samples in trial order.
func (s *Stats) Thresholds() []float64 {
	return append([]float64(nil), s.thresholds...)
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 { return s.mean }

// Stddev returns the sample standard deviation (divisor T−1).
// It is NaN for a single trial.
func (s *Stats) Stddev() float64 { return s.stddev }

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 { return s.lo }

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 { return s.hi }
