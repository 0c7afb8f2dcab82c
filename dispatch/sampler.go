// This file implements the seedable failure sampler used to simulate
// backends that never respond.
package dispatch

import (
	"math/rand"
	"sync"
)

// FailureSampler draws uniform values against a failure probability.
//
// Safe for concurrent use: math/rand.Rand is not goroutine-safe, so draws
// are serialized behind a mutex. A fixed seed makes the draw sequence fully
// reproducible.
type FailureSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFailureSampler returns a sampler seeded with seed.
func NewFailureSampler(seed int64) *FailureSampler {
	return &FailureSampler{rng: rand.New(rand.NewSource(seed))}
}

// Draw reports whether a request should fail, given failure probability p.
//
// p ≤ 0 never fails and p ≥ 1 always fails, without consuming a random
// value; everything in between consumes exactly one uniform draw.
func (s *FailureSampler) Draw(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	s.mu.Lock()
	v := s.rng.Float64()
	s.mu.Unlock()

	return v < p
}

// Jitter returns a uniform value in [0, max), used for latency jitter.
// max ≤ 0 yields 0.
func (s *FailureSampler) Jitter(max float64) float64 {
	if max <= 0 {
		return 0
	}

	s.mu.Lock()
	v := s.rng.Float64()
	s.mu.Unlock()

	return v * max
}
