// Package montecarlo estimates the site-percolation threshold of an n×n
// grid by repeated randomized trials.
//
// What:
//
//   - RunTrial opens uniformly random blocked sites of a fresh
//     percolation.Grid until it percolates and returns the fraction of
//     sites opened (one threshold sample in (0, 1]).
//   - Run repeats RunTrial and summarizes the samples as a *Stats: sample
//     mean, Bessel-corrected standard deviation and the 95% confidence
//     interval mean ± 1.96·s/√T.
//
// Randomness:
//
//   - Nothing here touches the global math/rand source. Callers either
//     inject a Source (sequential runs) or set Options.Seed.
//   - With a seed, trial i draws from its own stream derived from
//     (Seed, i), so a seeded Run returns identical samples for any
//     Options.Workers value.
//
// Concurrency:
//
//   - Options.Workers > 1 runs trials on a bounded errgroup pool. A Grid
//     and a *rand.Rand are never shared between goroutines; each trial
//     writes only its own slot of the sample slice and statistics are
//     computed after every trial finished.
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0, trials ≤ 0 or a nil Source.
//   - ErrSharedSource: an injected Source combined with Workers > 1.
package montecarlo
