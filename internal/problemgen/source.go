package problemgen

import "math/rand/v2"

// Source is the random source every sampling function draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// globalSource delegates to the process-wide math/rand/v2 generator,
// which is safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int                     { return rand.IntN(n) }
func (globalSource) Float64() float64                   { return rand.Float64() }
func (globalSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultSource returns the unseeded process-wide source.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic source. Not safe for concurrent use.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntRange returns a uniform integer in [lo, hi].
func IntRange(r Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Chance returns true with probability p.
func Chance(r Source, p float64) bool {
	return r.Float64() < p
}
