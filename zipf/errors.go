package zipf

import "errors"

var (
	// ErrInvalidPowerParameter indicates the power parameter s is not > 0.
	ErrInvalidPowerParameter = errors.New("zipf: power parameter s must be > 0")
	// ErrInvalidRangeStart indicates the range start is not > 0.
	ErrInvalidRangeStart = errors.New("zipf: range start must be > 0")
	// ErrInvalidRangeEnd indicates the range end is not > the range start.
	ErrInvalidRangeEnd = errors.New("zipf: range end must be > start")
	// ErrEmptyArray indicates ArrayAccess received a zero-length slice.
	ErrEmptyArray = errors.New("zipf: array must contain at least one element")
)
