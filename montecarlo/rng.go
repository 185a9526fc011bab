package montecarlo

import "math/rand"

// defaultSeed is used when callers pass Seed == 0.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id into a new seed with a
// SplitMix64 finalizer, so neighboring trial indices get uncorrelated
// streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG returns the stream for trial i under seed (0 ⇒ defaultSeed).
// The result depends only on (seed, i), never on scheduling.
func trialRNG(seed int64, i int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}
