package testutil

import (
	"math/rand"
	"sync"
	"unsafe"
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
		rand: rand.New(rand.NewSource(seed)),
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

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Fill fills dst with pseudo-random bytes.
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	out := make([]byte, n)
	r.Fill(out)
	return out
}

// Buffers returns num buffers with lengths drawn uniformly from [0, maxLen].
func (r *RNG) Buffers(num, maxLen int) [][]byte {
	out := make([][]byte, num)
	for i := range out {
		out[i] = r.Bytes(r.Intn(maxLen + 1))
	}
	return out
}

// Misalignment returns the distance of the data pointer of p past the
// previous 8-byte boundary. It is 0 for empty slices.
func Misalignment(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(unsafe.SliceData(p))) & 7)
}

// AtOffset returns a copy of p whose data pointer sits offset bytes past an
// 8-byte boundary. offset is taken modulo 8.
func AtOffset(p []byte, offset int) []byte {
	offset &= 7
	backing := make([]byte, len(p)+16)
	start := (8 - Misalignment(backing)) & 7
	start += offset
	out := backing[start : start+len(p) : start+len(p)]
	copy(out, p)
	return out
}

// Split returns the two halves of p cut at i.
func Split(p []byte, i int) ([]byte, []byte) {
	return p[:i:i], p[i:]
}
