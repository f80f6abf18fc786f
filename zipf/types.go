// Package zipf types: the uniform-source contract and seeding policy.
//
// This file centralizes the randomness contract for all sequence adapters.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across platforms.
//   - Encapsulation: the core never generates entropy; it only consumes
//     uniform values handed to it by a Source.
//   - Safety: no time-based seeding hidden anywhere; reproducible defaults.
package zipf

// Source yields uniform pseudo-random values nominally in [0, 1) and
// advances deterministically from its seed. *math/rand.Rand satisfies
// Source; any generator honoring the output contract may be plugged in
// via Sequence.WithRand.
//
// Implementations are not required to be goroutine-safe, and the sequence
// adapters never share one Source across goroutines on the caller's behalf.
type Source interface {
	Float64() float64
}

// DefaultSeed is the fixed seed used by Zipf.Iter when no seed is given.
// The value is arbitrary but stable, so default sequences are reproducible
// across runs and platforms.
const DefaultSeed int64 = 666

// regime tags the closed-form branch selected at construction.
// Exactly one constant bundle in Zipf is populated per tag.
type regime uint8

const (
	// regimeLog is the s = 1 branch: x = exp(ln a + u·ln(b/a)).
	regimeLog regime = iota
	// regimePow is the s ≠ 1 branch: x = (a^q + u·(b^q − a^q))^(1/q).
	regimePow
)
