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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Size returns a pseudo-random size in [0, maxSize].
func (r *RNG) Size(maxSize int) int {
	return r.Intn(maxSize + 1)
}

// Bools returns n pseudo-random booleans.
// Locks only once per call.
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// BitString returns a pseudo-random string of n '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	v := r.Bools(n)
	buf := make([]byte, n)
	for i, b := range v {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Sizes returns the edge-heavy list of sizes used by property tests:
// every size up to 17 plus count random sizes up to maxSize.
func (r *RNG) Sizes(count, maxSize int) []int {
	sizes := make([]int, 0, 18+count)
	for n := 0; n <= 17; n++ {
		sizes = append(sizes, n)
	}
	for i := 0; i < count; i++ {
		sizes = append(sizes, r.Size(maxSize))
	}
	return sizes
}
