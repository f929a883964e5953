package rng

import (
	"crypto/sha256"
	"encoding/binary"
)

// Multiplier and increment of the linear-congruential generator. The
// modulus is implicit in uint32 wraparound (2^32).
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// RNG is a deterministic, resettable 32-bit linear-congruential source.
// It feeds every randomized stage of world generation: site sampling,
// coastline jitter, ridge selection, and hill relief.
//
// next() advances the internal state and returns a value in [0,1). The
// generator is reseedable: Reset restores the state it was constructed
// with, so a stage can be replayed deterministically without reallocating
// an RNG.
//
// RNG instances are NOT safe for concurrent use; each pipeline stage owns
// its own instance.
type RNG struct {
	seed      uint32
	state     uint32
	stageName string
}

// New creates an RNG seeded with seed. Seed 0 is a valid seed.
func New(seed uint32) *RNG {
	return &RNG{seed: seed, state: seed}
}

// Derive produces an independent RNG for a named sub-stage by hashing
// (masterSeed, stageName, configHash) with SHA-256 and taking the first 4
// bytes of the digest as the new uint32 seed:
//
//	seed_stage = H(masterSeed, stageName, configHash)[:4]
//
// This gives every stage its own stream (isolation), reproduces identically
// across runs (determinism), and changes whenever the config changes
// (sensitivity), mirroring the ordering rule in the concurrency model:
// sub-stages that need an independent stream (settlements, buildings) are
// derived once, up front, rather than interleaved with the parent stage's
// own draws.
func Derive(masterSeed uint32, stageName string, configHash []byte) *RNG {
	h := sha256.New()
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stageName))
	h.Write(configHash)
	sum := h.Sum(nil)
	derived := binary.BigEndian.Uint32(sum[:4])
	r := New(derived)
	r.stageName = stageName
	return r
}

// Reset restores the generator to its initial seed.
func (r *RNG) Reset() {
	r.state = r.seed
}

// Seed returns the seed this generator was constructed (or derived) with.
func (r *RNG) Seed() uint32 {
	return r.seed
}

// StageName returns the stage name this RNG was derived for, or "" if it
// was constructed directly with New.
func (r *RNG) StageName() string {
	return r.stageName
}

// next advances the LCG state and returns a value in [0,1).
func (r *RNG) next() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / 4294967296.0 // 2^32
}

// Next returns the next pseudo-random float64 in [0,1).
func (r *RNG) Next() float64 {
	return r.next()
}

// NextRange returns a + next()*(b-a), a pseudo-random float64 in [a,b).
func (r *RNG) NextRange(a, b float64) float64 {
	return a + r.next()*(b-a)
}

// NextInt returns floor(NextRange(a, b+1)), a pseudo-random integer in
// [a,b] inclusive.
func (r *RNG) NextInt(a, b int) int {
	return int(r.NextRange(float64(a), float64(b+1)))
}

// Bool returns a pseudo-random boolean with probability 0.5.
func (r *RNG) Bool() bool {
	return r.next() < 0.5
}

// Shuffle pseudo-randomizes the order of n elements in place using the
// Fisher-Yates algorithm driven by this RNG.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.NextInt(0, i)
		swap(i, j)
	}
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if weights is empty
// or all weights are zero.
func (r *RNG) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	target := r.next() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
