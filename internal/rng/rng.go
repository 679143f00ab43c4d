// Package rng implements the engine's deterministic pseudo-random core:
// every stochastic combinator derives its randomness from a pure hash of
// (seed, time-position, salt), never from an incremental cursor, so that
// queries stay referentially transparent and reproducible regardless of
// how an arc is split across calls (spec §4.8/§9).
package rng

import "math/bits"

// HashAt computes a deterministic hash in [0, 2^64) from a seed, a
// rational time position (given as its canonical numerator/denominator so
// equal positions always hash identically regardless of how they were
// computed), and a per-combinator salt that keeps independent stochastic
// combinators from correlating when they share a seed and a time.
func HashAt(seed uint64, num, den int64, salt uint64) uint64 {
	h := seed ^ 0x9E3779B97F4A7C15
	h = mix(h, uint64(num)*0x2545F4914F6CDD1D)
	h = mix(h, uint64(den)*0xBF58476D1CE4E5B9)
	h = mix(h, salt*0x94D049BB133111EB)
	return h
}

// mix is a single multiply-xorshift round, the small integer hash spec
// §4.8 asks for.
func mix(h, v uint64) uint64 {
	h ^= v
	h *= 0xFF51AFD7ED558CCD
	h ^= bits.RotateLeft64(h, 31)
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return h
}

// Float01 turns a HashAt result into a float64 in [0,1).
func Float01(h uint64) float64 {
	// Keep the top 53 bits so the result is exactly representable as a
	// float64 mantissa.
	return float64(h>>11) / float64(1<<53)
}

// RandAt is the rand_at(seed, time, salt) primitive from spec §4.8,
// expressed over a rational time position's numerator/denominator.
func RandAt(seed uint64, num, den int64, salt uint64) float64 {
	return Float01(HashAt(seed, num, den, salt))
}

// Salts used by the engine's built-in stochastic combinators. Each gets
// its own constant so two combinators sharing a seed and a time never
// correlate (spec §4.8).
const (
	SaltRand uint64 = iota + 1
	SaltRand2
	SaltBrand
	SaltBrandBy
	SaltIrand
	SaltDegrade
	SaltUndegrade
	SaltSometimes
	SaltRandcat
	SaltChoose
)
