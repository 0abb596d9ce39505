package random

import (
	"math/rand"
	"sync"
)

// Source is the process RNG behind all scheduling rolls. A fixed seed makes
// a simulation run reproducible.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) Roll(max uint32) uint32 {
	if max == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint32(s.rng.Intn(int(max)))
}

func (s *Source) Chance(percent uint32) bool {
	if percent == 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return s.Roll(100) < percent
}
