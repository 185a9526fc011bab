package montecarlo

import "math"

// sampleMean returns the arithmetic mean of xs. xs must be non-empty.
func sampleMean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStddev returns the Bessel-corrected standard deviation of xs
// around mean. A single sample has no variance estimate: NaN.
func sampleStddev(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// confidenceInterval returns mean ∓ z95·stddev/√trials. A NaN stddev
// yields NaN bounds.
func confidenceInterval(mean, stddev float64, trials int) (lo, hi float64) {
	half := z95 * stddev / math.Sqrt(float64(trials))
	return mean - half, mean + half
}

// newStats freezes samples into a *Stats, taking ownership of thresholds.
func newStats(n int, thresholds []float64) *Stats {
	mean := sampleMean(thresholds)
	stddev := sampleStddev(thresholds, mean)
	lo, hi := confidenceInterval(mean, stddev, len(thresholds))
	return &Stats{
		n:          n,
		thresholds: thresholds,
		mean:       mean,
		stddev:     stddev,
		lo:         lo,
		hi:         hi,
	}
}
