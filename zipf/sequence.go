package zipf

import "math/rand"

// Sequence is a lazy, infinite stream of Zipf variates: each Next pulls
// exactly one uniform value from the owned Source and feeds it through the
// handle's Sample.
//
// Two sequences built from the same handle and the same seed (or sources
// in the same state) produce bit-identical output.
//
// Next mutates the Source, so a Sequence is NOT goroutine-safe: use one
// per goroutine or serialize calls externally.
type Sequence struct {
	dist Zipf
	src  Source
}

// Iter returns an infinite Sequence seeded with DefaultSeed, giving
// reproducible output across runs — handy for deterministic tests and
// benchmarks.
func (z Zipf) Iter() *Sequence {
	return z.IterSeed(DefaultSeed)
}

// IterSeed returns an infinite Sequence over a fresh deterministic
// math/rand source seeded with seed.
func (z Zipf) IterSeed(seed int64) *Sequence {
	return &Sequence{dist: z, src: rand.New(rand.NewSource(seed))}
}

// WithRand swaps in a caller-supplied uniform source and returns the same
// Sequence for fluent construction:
//
//	seq := z.Iter().WithRand(rand.New(rand.NewSource(123)))
func (s *Sequence) WithRand(src Source) *Sequence {
	s.src = src
	return s
}

// Next draws one uniform value, advances the source state and returns the
// Zipf variate. The sequence never terminates; finite consumption is the
// caller's concern (see Take).
func (s *Sequence) Next() float64 {
	return s.dist.Sample(s.src.Float64())
}

// Take consumes and returns the next n values.
//
// Complexity: O(n) time, O(n) space (the returned slice).
func (s *Sequence) Take(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// IndexSequence is an infinite stream of integer indices in
// [start, end) whose frequency follows the Zipf law. It is the base
// Sequence composed with truncation toward zero — the mapping step adds no
// distribution logic of its own.
type IndexSequence struct {
	seq Sequence
}

// IndicesAccess returns an infinite stream of array indices in
// [start, end) following the Zipf distribution, for simulating skewed
// access over an abstract index space.
//
// Validation mirrors New over (float64(start), float64(end), s) and is
// reported before any value is produced.
//
// Boundary: indices come from truncating continuous samples, so end is
// only ever reachable through last-ulp rounding at the top of the range;
// u < 1 otherwise keeps every index strictly below end.
func IndicesAccess(start, end int, s float64) (*IndexSequence, error) {
	z, err := New(float64(start), float64(end), s)
	if err != nil {
		return nil, err
	}
	return &IndexSequence{seq: *z.Iter()}, nil
}

// WithRand swaps the underlying uniform source; fluent, like Sequence.WithRand.
func (s *IndexSequence) WithRand(src Source) *IndexSequence {
	s.seq.src = src
	return s
}

// Next returns the next Zipf distributed index.
func (s *IndexSequence) Next() int {
	return int(s.seq.Next())
}

// Take consumes and returns the next n indices.
func (s *IndexSequence) Take(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// ValueSequence is an infinite stream of elements drawn from a fixed
// slice, with selection frequency following the Zipf law. The slice is
// owned by the sequence for its lifetime; every produced value is an
// element that was present at construction, never synthesized.
type ValueSequence[T any] struct {
	idx    IndexSequence
	offset int
	arr    []T
}

// ArrayAccess returns an infinite stream over arr where arr[0] is rank 1
// (most frequent) and frequency decays with position by the power s.
//
// offset shifts the underlying index axis: the distribution runs over
// [offset, offset+len(arr)) and each draw maps back through
// arr[i−offset]. offset must be ≥ 1 (the range start must stay positive);
// larger offsets flatten the head of the distribution.
//
// Fails with ErrEmptyArray when arr has no elements — checked before any
// distribution handle is built, regardless of offset or s — and otherwise
// validates like New.
func ArrayAccess[T any](offset int, arr []T, s float64) (*ValueSequence[T], error) {
	if len(arr) == 0 {
		return nil, ErrEmptyArray
	}
	idx, err := IndicesAccess(offset, offset+len(arr), s)
	if err != nil {
		return nil, err
	}
	return &ValueSequence[T]{idx: *idx, offset: offset, arr: arr}, nil
}

// WithRand swaps the underlying uniform source; fluent, like Sequence.WithRand.
func (s *ValueSequence[T]) WithRand(src Source) *ValueSequence[T] {
	s.idx.seq.src = src
	return s
}

// Next returns the next Zipf distributed element of the array.
func (s *ValueSequence[T]) Next() T {
	return s.arr[s.idx.Next()-s.offset]
}

// Take consumes and returns the next n elements.
func (s *ValueSequence[T]) Take(n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}
