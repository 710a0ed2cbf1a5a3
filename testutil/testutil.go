package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Fields generates n values that each fit in width bits.
func (r *RNG) Fields(n, width int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	mask := uint32((uint64(1) << width) - 1)
	values := make([]uint32, n)
	for i := range values {
		values[i] = r.rand.Uint32() & mask
	}
	return values
}

// Indices generates n logical indices in [0, limit).
// Duplicates are possible.
func (r *RNG) Indices(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := make([]int, n)
	for i := range idx {
		idx[i] = r.rand.Intn(limit)
	}
	return idx
}
