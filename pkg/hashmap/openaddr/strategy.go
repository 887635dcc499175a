package openaddr

import "math/bits"

// HashingStrategy computes where the probe sequence of a key starts and how
// far apart its positions are. Implementations must be deterministic.
type HashingStrategy interface {
	// Hash returns the primary position of key, in [0, capacity).
	Hash(key string, capacity int) (int, error)
	// Step returns the probe increment of key, in [1, capacity) and
	// coprime with capacity.
	Step(key string, capacity int) int
}

const (
	hashSeed       = 31415
	hashBase       = 31
	stepSeed       = 27449
	stepMultiplier = 92821
)

// DoubleHashing is the general purpose strategy. Both hashes are polynomial
// rolling hashes over the code points of the key whose multipliers evolve
// independently, so collisions of the primary hash do not share a step.
type DoubleHashing struct{}

// Hash accumulates value = (code + a*value) mod capacity, with a evolving by
// a multiplicative base modulo capacity-1.
func (DoubleHashing) Hash(key string, capacity int) (int, error) {
	n, m := uint64(capacity), uint64(capacity-1)
	var value uint64
	a := uint64(hashSeed)
	for _, r := range key {
		value = (uint64(r) + mulmod(a, value, n)) % n
		a = mulmod(a, hashBase, m)
	}
	return int(value), nil
}

// Step evaluates a second rolling hash modulo capacity-1, clamps it to at
// least 1, and then walks it forward until it is coprime with capacity.
func (DoubleHashing) Step(key string, capacity int) int {
	m := uint64(capacity - 1)
	var value uint64
	a := uint64(stepSeed)
	for _, r := range key {
		value = (uint64(r) + mulmod(a, value, m)) % m
		a = mulmod(a, stepMultiplier, m)
	}
	return coprimeStep(int(value), capacity)
}

// coprimeStep clamps step to at least 1 and increments it (mod capacity)
// until gcd(step, capacity) == 1. capacity-1 is always coprime with
// capacity, so the walk ends before it wraps.
func coprimeStep(step, capacity int) int {
	if step < 1 {
		step = 1
	}
	for gcd(step, capacity) != 1 {
		step = (step + 1) % capacity
	}
	return step
}

// gcd is the euclidean greatest common divisor
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mulmod returns a*b mod m without overflowing on large capacities
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
