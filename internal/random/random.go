// Package random provides the pseudo-random selectors used to build mock data.
//
// Every consumer receives a Source instead of calling a global generator, so
// tests can substitute a seeded, deterministic one.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewSource returns a process-wide source seeded at start-up. Safe for concurrent use.
func NewSource() Source {
	return globalSource{}
}

type seededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeeded returns a deterministic source. Safe for concurrent use.
func NewSeeded(seed uint64) Source {
	return &seededSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Item returns a uniformly random element of list. list must not be empty.
func Item[T any](src Source, list []T) T {
	return list[src.IntN(len(list))]
}

// Between returns a uniformly random integer in [lo, hi].
func Between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
