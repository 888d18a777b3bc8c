package prank

import (
	"math/rand/v2"
	"time"
)

// Rand is the only source of randomness; *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

func NewRand() Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intBetween draws from [lo, hi] inclusive.
func intBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func durationBetween(r Rand, lo, hi time.Duration) time.Duration {
	return time.Duration(uniform(r, float64(lo), float64(hi)))
}

func coin(r Rand) bool {
	return r.IntN(2) == 0
}
