package coloring

import "math/rand/v2"

// DefaultSeed is the seed used when a caller supplies no random source.
const DefaultSeed = uint64(42)

// NewRand returns a deterministic PCG-backed generator for seed.
// The same seed always yields the same stream, which makes random orders and
// whole Iterated Greedy runs reproducible.
func NewRand(seed uint64) *rand.Rand {
	return NewStream(seed, 0)
}

// NewStream returns generator n of seed. Different n give independent
// streams for the same seed; stream 0 is [NewRand].
func NewStream(seed, n uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, (seed^0xdeadbeef)+n))
}
