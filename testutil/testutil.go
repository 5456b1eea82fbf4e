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

// FillUniform fills dst with random values in range [0, 1).
func (r *RNG) FillUniform(dst []float32) {
	r.FillUniformRange(dst, 0, 1)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	return r.RangeVectors(num, dimensions, 0, 1)
}

// UniformRangeVectors generates random vectors with values in range [-1, 1).
func (r *RNG) UniformRangeVectors(num int, dimensions int) [][]float32 {
	return r.RangeVectors(num, dimensions, -1, 1)
}

// RangeVectors generates random vectors with values in range [minVal, maxVal).
func (r *RNG) RangeVectors(num, dimensions int, minVal, maxVal float32) [][]float32 {
	data := make([]float32, num*dimensions)
	r.FillUniformRange(data, minVal, maxVal)

	vectors := make([][]float32, num)
	for i := range num {
		vectors[i] = data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
	}
	return vectors
}

// Sample returns k distinct indexes from [0, n) in random order.
// If k > n, all n indexes are returned.
func (r *RNG) Sample(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	perm := r.rand.Perm(n)
	if k < n {
		perm = perm[:k]
	}
	return perm
}
