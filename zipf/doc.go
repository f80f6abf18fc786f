// Package zipf generates Zipf (power-law) distributed variates via a
// closed-form inverse-CDF transform over a continuous range [a, b).
//
// What:
//
//   - Zipf wraps a validated range a..b and power parameter s > 0, with all
//     regime constants precomputed once at construction.
//   - Sample converts one uniform value u ∈ [0,1) into a Zipf variate in
//     O(1): one multiply-add plus one exp or pow, nothing else.
//   - SampleBatch applies Sample element-wise over a slice pair.
//   - Sequence pairs a handle with a seeded uniform source to yield a lazy,
//     infinite, reproducible stream of variates.
//   - IndicesAccess / ArrayAccess derive integer-index and element streams
//     from the same base sequence (the Zipf math is defined exactly once).
//
// Why:
//
//   - Load testing: skewed key-access patterns (“80% of requests hit 20%
//     of keys”) without rejection sampling or lookup tables.
//   - Synthetic workloads: rank-frequency traffic over an index space or a
//     fixed element set.
//
// Math:
//
//	The inverse CDF splits into two numeric regimes, selected once at
//	construction by exact comparison s == 1:
//
//	  s = 1:  x = exp(ln a + u·ln(b/a))
//	  s ≠ 1:  x = (a^q + u·(b^q − a^q))^(1/q),  q = 1 − s
//
//	Both regimes are continuous across the switch: the s ≠ 1 form converges
//	to the s = 1 form as s → 1 from either side.
//
// Complexity:
//
//   - New: O(1) — a handful of log/pow evaluations.
//   - Sample: O(1), allocation-free, pure.
//   - SampleBatch: O(n), no cross-element dependency (vectorizable).
//   - Sequence.Next: O(1) — one uniform pull plus one Sample.
//
// Concurrency:
//
//   - Zipf is an immutable value after New: copy it freely and call Sample
//     and SampleBatch concurrently without synchronization.
//   - Sequence (and the derived adapters) mutate their uniform source on
//     every Next and are NOT goroutine-safe. Use one sequence per
//     goroutine, or serialize externally.
//
// Errors:
//
//   - ErrInvalidPowerParameter: s ≤ 0.
//   - ErrInvalidRangeStart: range start ≤ 0.
//   - ErrInvalidRangeEnd: range end ≤ start.
//   - ErrEmptyArray: ArrayAccess given a zero-length slice.
//
// All validation happens at construction; sampling never fails. The one
// deliberate panic is SampleBatch on mismatched slice lengths, which is a
// caller bug rather than invalid domain data.
package zipf
