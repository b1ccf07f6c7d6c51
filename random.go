package srpair

import (
	"golang.org/x/exp/rand"
)

// Source is the uniform random generator consumed by the augmentation and crop
// operations. *rand.Rand satisfies it.
//
// A Source is not safe for concurrent use unless it was created with
// NewLockedSource. Data loading workers should own one Source each.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0, n). It panics if n <= 0.
	Intn(n int) int
}

var _ Source = (*rand.Rand)(nil)

// NewSource returns a seeded generator meant to be used from a single goroutine.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewLockedSource returns a seeded generator which can be shared between goroutines.
func NewLockedSource(seed uint64) *rand.Rand {
	src := &rand.LockedSource{}
	src.Seed(seed)
	return rand.New(src)
}

// randIntInclusive draws an integer from the closed interval [lo, hi].
func randIntInclusive(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}
