// Package randutil builds reproducible random sources. Every game, deck and
// agent policy takes a *rand.Rand from here so that a single seed replays a
// whole session.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Derive returns an independent generator for a numbered stream of seed.
// Agents use it so their choices do not shift the deck's sequence.
func Derive(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed) ^ splitmix(stream+1)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64*(stream+2))))
}

// Resolve returns seed unchanged unless it is zero, in which case a
// time-derived seed is returned so the caller can log it for replay.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := int64(splitmix(uint64(time.Now().UnixNano())) >> 1)
	if s == 0 {
		s = 1
	}
	return s
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
