// Package randutil derives the reproducible random sources used for dealing
// and for won-stack reshuffles.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so every call site gets the
// same sequence for the same seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged unless it is zero, in which case a fresh
// non-zero seed is drawn. Zero means "pick one for me" on the command line.
func Resolve(seed int64) int64 {
	for seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			seed = time.Now().UnixNano()
			continue
		}
		seed = int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	}
	return seed
}

// Derive returns the seed for the i-th game of a run started from master.
// Neighbouring games get well separated seeds.
func Derive(master int64, i int) int64 {
	return int64(mix(uint64(master) + uint64(i)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
