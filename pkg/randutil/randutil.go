// Package randutil provides a goroutine-safe *rand.Rand.
package randutil

import (
	"math/rand/v2"
	"sync"
)

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// New returns a *rand.Rand backed by a PCG source seeded with seed.
// The returned generator is safe for concurrent use.
func New(seed uint64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)})
}

// NewRandom returns a concurrency-safe generator seeded from the runtime source.
func NewRandom() *rand.Rand {
	return New(rand.Uint64())
}
