package sim

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for launch, burst and glyph jitter.
// *rand.Rand satisfies it; tests inject seeded or scripted sources.
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG-backed source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform value in [lo, hi). lo == hi returns lo.
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
