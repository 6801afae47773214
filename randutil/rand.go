// Package randutil centralises deterministic RNG seeding so every
// entry point that accepts a --seed flag derives its randomness the
// same way.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. The
// two 64-bit PCG seeds are derived by mixing seed and seed+golden
// ratio separately, so nearby input seeds don't produce correlated
// streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
